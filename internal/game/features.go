package game

import (
	"cmp"
	"slices"
)

// Result is the outcome of a finished game.
type Result struct {
	GameID    string         `json:"game_id,omitempty"`
	Seed      int64          `json:"seed"`
	Steps     int            `json:"steps"`
	Winners   []int          `json:"winners"`
	Discarded []Card         `json:"discarded"`
	Players   []PlayerResult `json:"players"`
}

// PlayerResult is one seat's final state.
type PlayerResult struct {
	Name     string   `json:"name"`
	Tokens   int      `json:"tokens"`
	Cards    []Card   `json:"cards"`
	Features Features `json:"features"`
}

// Tied reports whether more than one player shared the lowest score.
func (r *Result) Tied() bool { return len(r.Winners) > 1 }

// Features is the fixed per-player vector emitted for offline analysis.
// History statistics are zero when the history is empty.
type Features struct {
	Seat    int     `json:"seat"`
	Win     Outcome `json:"win"`
	Score   int     `json:"score"`
	Thresholds

	TokenMin       int     `json:"token_min"`
	TokenMax       int     `json:"token_max"`
	TokenMean      float64 `json:"token_mean"`
	TokenMedianLow int     `json:"token_median_low"`

	EffValMin       float64 `json:"eff_val_min"`
	EffValMax       float64 `json:"eff_val_max"`
	EffValMean      float64 `json:"eff_val_mean"`
	EffValMedianLow float64 `json:"eff_val_median_low"`

	HandSize      int     `json:"hand_size"`
	Runs          int     `json:"runs"`
	FirstCard     Card    `json:"first_card"`
	CardMin       Card    `json:"card_min"`
	CardMax       Card    `json:"card_max"`
	CardMean      float64 `json:"card_mean"`
	CardMedianLow Card    `json:"card_median_low"`
}

// FeaturesOf summarises p's current state. Scores and outcomes are read
// as they stand, so call it after Table.Finish for final vectors.
func FeaturesOf(p *Player) Features {
	f := Features{
		Seat:       p.Seat,
		Win:        p.Win,
		Score:      p.Score(),
		Thresholds: p.Thresholds,
		HandSize:   p.HandSize(),
		Runs:       p.RunCount(),
	}

	f.TokenMin, f.TokenMax, f.TokenMean, f.TokenMedianLow = summarize(p.TokenHistory)
	f.EffValMin, f.EffValMax, f.EffValMean, f.EffValMedianLow = summarize(p.EffValHistory)
	f.CardMin, f.CardMax, f.CardMean, f.CardMedianLow = summarize(p.cards)
	if len(p.taken) > 0 {
		f.FirstCard = p.taken[0]
	}
	return f
}

type number interface {
	~int | ~float64
}

// summarize returns min, max, mean and low median of values, or zeros for
// an empty slice.
func summarize[T number](values []T) (lo, hi T, mean float64, medianLow T) {
	if len(values) == 0 {
		return lo, hi, 0, medianLow
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, cmp.Compare[T])

	var sum float64
	for _, v := range sorted {
		sum += float64(v)
	}
	return sorted[0], sorted[len(sorted)-1], sum / float64(len(sorted)), sorted[(len(sorted)-1)/2]
}
