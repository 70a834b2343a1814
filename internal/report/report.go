// Package report writes simulation results for humans and for offline
// analysis.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lox/nothanks/internal/fileutil"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/simulator"
	"github.com/lox/nothanks/internal/statistics"
)

// Format selects a machine-readable output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or csv)", s)
	}
}

// Document is the JSON shape of a simulation run.
type Document struct {
	Games      int            `json:"games"`
	TiedGames  int            `json:"tied_games"`
	Started    time.Time      `json:"started"`
	DurationMs int64          `json:"duration_ms"`
	StepsMean  float64        `json:"steps_mean"`
	Seats      []SeatSummary  `json:"seats"`
	Results    []*game.Result `json:"results"`
}

// SeatSummary is one seat's aggregate over the run.
type SeatSummary struct {
	Seat       int     `json:"seat"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	Ties       int     `json:"ties"`
	WinRate    float64 `json:"win_rate"`
	ScoreMean  float64 `json:"score_mean"`
	ScoreCILow float64 `json:"score_ci95_low"`
	ScoreCIHi  float64 `json:"score_ci95_high"`
	ScoreP50   float64 `json:"score_median"`
	TokensMean float64 `json:"tokens_mean"`
	HandMean   float64 `json:"hand_size_mean"`
	RunsMean   float64 `json:"runs_mean"`
}

// Summarize flattens per-seat statistics.
func Summarize(stats *statistics.Statistics) []SeatSummary {
	out := make([]SeatSummary, len(stats.Seats))
	for i := range stats.Seats {
		s := &stats.Seats[i]
		lo, hi := s.Score.ConfidenceInterval95()
		out[i] = SeatSummary{
			Seat:       s.Seat,
			Games:      s.Games,
			Wins:       s.Wins,
			Ties:       s.Ties,
			WinRate:    s.WinRate(),
			ScoreMean:  s.Score.Mean(),
			ScoreCILow: lo,
			ScoreCIHi:  hi,
			ScoreP50:   s.Score.Median(),
			TokensMean: s.Tokens.Mean(),
			HandMean:   s.HandSize.Mean(),
			RunsMean:   s.Runs.Mean(),
		}
	}
	return out
}

// WriteJSON writes the whole run, per-game feature vectors included.
func WriteJSON(w io.Writer, r *simulator.Report) error {
	doc := Document{
		Games:      r.Stats.Games,
		TiedGames:  r.Stats.TiedGames,
		Started:    r.Started,
		DurationMs: r.Duration.Milliseconds(),
		StepsMean:  r.Stats.Steps.Mean(),
		Seats:      Summarize(r.Stats),
		Results:    r.Results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// CSVHeader lists the columns written by WriteCSV, one row per player per
// game.
var CSVHeader = []string{
	"game", "game_id", "seed", "steps", "seat", "name", "win", "score", "tokens",
	"init_threshold", "eff_val_threshold", "token_threshold", "pot_threshold",
	"token_min", "token_max", "token_mean", "token_median_low",
	"eff_val_min", "eff_val_max", "eff_val_mean", "eff_val_median_low",
	"hand_size", "runs", "first_card",
	"card_min", "card_max", "card_mean", "card_median_low", "cards",
}

// WriteCSV writes the feature vectors of every player in every game.
func WriteCSV(w io.Writer, r *simulator.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for i, res := range r.Results {
		for _, p := range res.Players {
			if err := cw.Write(csvRow(i, res, p)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(i int, res *game.Result, p game.PlayerResult) []string {
	f := p.Features
	itoa := strconv.Itoa
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	cards := make([]string, len(p.Cards))
	for j, c := range p.Cards {
		cards[j] = c.String()
	}
	return []string{
		itoa(i), res.GameID, strconv.FormatInt(res.Seed, 10), itoa(res.Steps),
		itoa(f.Seat), p.Name, f.Win.String(), itoa(f.Score), itoa(p.Tokens),
		itoa(f.Init), itoa(f.EffVal), itoa(f.Token), itoa(f.Pot),
		itoa(f.TokenMin), itoa(f.TokenMax), ftoa(f.TokenMean), itoa(f.TokenMedianLow),
		ftoa(f.EffValMin), ftoa(f.EffValMax), ftoa(f.EffValMean), ftoa(f.EffValMedianLow),
		itoa(f.HandSize), itoa(f.Runs), itoa(int(f.FirstCard)),
		itoa(int(f.CardMin)), itoa(int(f.CardMax)), ftoa(f.CardMean), itoa(int(f.CardMedianLow)),
		strings.Join(cards, " "),
	}
}

// Write encodes r in the given format.
func Write(w io.Writer, format Format, r *simulator.Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile writes r to path atomically; readers never see a partial file.
func WriteFile(path string, format Format, r *simulator.Report) error {
	return fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return Write(w, format, r)
	})
}

// FormatFromPath guesses the format from a file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}
