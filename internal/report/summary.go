package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/nothanks/internal/simulator"
)

// SummaryOptions controls terminal rendering.
type SummaryOptions struct {
	NoColor bool
}

// RenderSummary writes a per-seat table followed by run totals.
func RenderSummary(w io.Writer, r *simulator.Report, opts SummaryOptions) error {
	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	title := renderer.NewStyle().Bold(true)
	header := renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1)
	best := cell.Foreground(lipgloss.Color("2"))

	seats := Summarize(r.Stats)
	top := 0
	for i, s := range seats {
		if s.WinRate > seats[top].WinRate {
			top = i
		}
	}

	rows := make([][]string, 0, len(seats))
	for _, s := range seats {
		rows = append(rows, []string{
			strconv.Itoa(s.Seat + 1),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Ties),
			fmt.Sprintf("%.1f%%", s.WinRate*100),
			fmt.Sprintf("%.2f", s.ScoreMean),
			fmt.Sprintf("[%.2f, %.2f]", s.ScoreCILow, s.ScoreCIHi),
			fmt.Sprintf("%.2f", s.TokensMean),
			fmt.Sprintf("%.2f", s.HandMean),
			fmt.Sprintf("%.2f", s.RunsMean),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Faint(true)).
		Headers("Seat", "Wins", "Ties", "Win %", "Score", "95% CI", "Tokens", "Cards", "Runs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == top:
				return best
			default:
				return cell
			}
		})

	lines := []string{
		title.Render(fmt.Sprintf("%d games, %d tied", r.Stats.Games, r.Stats.TiedGames)),
		t.String(),
		fmt.Sprintf("Mean steps per game: %.1f", r.Stats.Steps.Mean()),
	}
	if gps := r.GamesPerSecond(); gps > 0 {
		lines = append(lines, fmt.Sprintf("Duration: %s (%.0f games/sec)", r.Duration.Round(time.Millisecond), gps))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
