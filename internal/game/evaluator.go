package game

// Holder answers whether some hand (or set of hands) contains a card.
type Holder interface {
	Has(card Card) bool
}

// HolderFunc adapts a function to Holder.
type HolderFunc func(card Card) bool

func (f HolderFunc) Has(card Card) bool { return f(card) }

// EffectiveValue is the change to a player's score from taking card now,
// offset by the pot they would collect. Negative values improve the score.
//
// hand is the deciding player's hand, elsewhere covers every other hand,
// remaining/total describe the deck and drive the chance that a one-card gap
// (card+1) is still to come.
func EffectiveValue(card Card, hand, elsewhere Holder, remaining, total, pot int) float64 {
	c := float64(card)
	var value float64

	switch {
	case hand.Has(card+1) && hand.Has(card-1):
		// Bridges two runs; the upper run stops counting.
		value = -(c + 1)
	case hand.Has(card + 1):
		// New low end of an existing run.
		value = -1
	case hand.Has(card - 1):
		// Extends a run upward, score unchanged.
		value = 0
	case hand.Has(card + 2):
		if elsewhere.Has(card + 1) {
			// The gap can never close.
			value = c
			break
		}
		prob := 0.0
		if total > 0 {
			prob = float64(remaining) / float64(total)
		}
		value = -2*prob + c*(1-prob)
	default:
		value = c
	}

	return value - float64(pot)
}

// RefreshEffectiveValues recomputes EffVal for every player against the
// face-up card. It is a no-op once the deck is exhausted.
func (t *Table) RefreshEffectiveValues() {
	if !t.cardUp.Valid() {
		return
	}
	for _, p := range t.players {
		p.EffVal = EffectiveValue(t.cardUp, p, t.othersOf(p), t.deck.Remaining(), t.deck.Total(), t.pot)
	}
}

// othersOf returns a Holder over every hand except p's.
func (t *Table) othersOf(p *Player) Holder {
	return HolderFunc(func(card Card) bool {
		return t.HeldByOther(p, card)
	})
}
