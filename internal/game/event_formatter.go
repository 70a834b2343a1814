package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Verbosity levels understood by the narrator.
const (
	VerbosityQuiet    = 0
	VerbosityNarrate  = 1
	VerbosityDetailed = 2
)

// NarratorOptions controls how much of a game is written out.
type NarratorOptions struct {
	// Verbosity 0 writes nothing, 1 narrates every action, 2 also shows
	// each decision's reason and effective value.
	Verbosity int
	NoColor   bool
}

// Narrator renders game events as human-readable lines.
type Narrator struct {
	w    io.Writer
	opts NarratorOptions

	header lipgloss.Style
	take   lipgloss.Style
	pass   lipgloss.Style
	reason lipgloss.Style
	winner lipgloss.Style
}

// NewNarrator creates a narrator writing to w.
func NewNarrator(w io.Writer, opts NarratorOptions) *Narrator {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Narrator{
		w:      w,
		opts:   opts,
		header: r.NewStyle().Bold(true),
		take:   r.NewStyle().Foreground(lipgloss.Color("2")),
		pass:   r.NewStyle().Foreground(lipgloss.Color("8")),
		reason: r.NewStyle().Faint(true),
		winner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// OnEvent implements EventSubscriber.
func (n *Narrator) OnEvent(event GameEvent) {
	if n.opts.Verbosity <= VerbosityQuiet {
		return
	}
	var lines []string
	switch e := event.(type) {
	case GameStartEvent:
		lines = n.FormatGameStart(e)
	case CardUpEvent:
		lines = []string{n.FormatCardUp(e)}
	case PlayerActionEvent:
		lines = n.FormatPlayerAction(e)
	case GameEndEvent:
		lines = n.FormatGameEnd(e)
	}
	for _, line := range lines {
		fmt.Fprintln(n.w, line)
	}
}

func (n *Narrator) FormatGameStart(e GameStartEvent) []string {
	lines := make([]string, 0, len(e.Players)+3)
	for _, p := range e.Players {
		lines = append(lines, fmt.Sprintf("Created %s at position %d with init_threshold: %d and token_threshold: %d and eff_val_threshold: %d",
			p.DisplayName(), p.Seat, p.Thresholds.Init, p.Thresholds.Token, p.Thresholds.EffVal))
	}
	if e.GameID != "" && n.opts.Verbosity >= VerbosityDetailed {
		lines = append(lines, n.reason.Render("game "+e.GameID))
	}
	lines = append(lines, "", "Initial deck: "+FormatCards(e.Deck))
	lines = append(lines, n.FormatCardUp(CardUpEvent{Card: e.CardUp, Remaining: len(e.Deck)}))
	return lines
}

func (n *Narrator) FormatCardUp(e CardUpEvent) string {
	return n.header.Render(fmt.Sprintf("Card up: %d", e.Card))
}

func (n *Narrator) FormatPlayerAction(e PlayerActionEvent) []string {
	var lines []string
	if n.opts.Verbosity >= VerbosityDetailed {
		lines = append(lines, n.reason.Render(fmt.Sprintf("  eff_val = %s, pot = %d: %s", formatEffVal(e.EffVal+float64(e.Pot)), e.Pot, e.Reason)))
	}

	name := e.Player.DisplayName()
	switch e.Action {
	case Take:
		lines = append(lines, fmt.Sprintf("%s %s %s", name, FormatCards(e.Hand), n.take.Render(fmt.Sprintf("takes card: %d", e.Card))))
	default:
		lines = append(lines, fmt.Sprintf("%s %s %s", name, FormatCards(e.Hand), n.pass.Render(fmt.Sprintf("plays token, has %d remaining", e.Player.Tokens))))
	}
	return lines
}

func (n *Narrator) FormatGameEnd(e GameEndEvent) []string {
	lines := []string{n.header.Render("Game Over"), ""}
	for _, p := range e.Players {
		line := fmt.Sprintf("%s  score: %d  tokens: %d  cards: %s", p.DisplayName(), p.Score(), p.Tokens, FormatCards(p.Cards()))
		if p.Win != Lose {
			line = n.winner.Render(line + "  (" + p.Win.String() + ")")
		}
		lines = append(lines, line)
	}
	return lines
}

// formatEffVal drops the fraction from whole values.
func formatEffVal(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
