package tui

import "github.com/lox/nothanks/internal/game"

// seatAgent decides for one keyboard-controlled seat and defers every other
// seat to the wrapped policy.
type seatAgent struct {
	seat    int
	policy  game.Decider
	pending *game.Decision
}

func (a *seatAgent) Decide(t *game.Table) game.Decision {
	if t.WhoseTurn() == a.seat && a.pending != nil {
		d := *a.pending
		a.pending = nil
		return d
	}
	return a.policy.Decide(t)
}
