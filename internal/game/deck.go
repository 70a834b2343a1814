package game

import (
	rand "math/rand/v2"
	"slices"
)

// Deck holds the ordered cards still to be drawn.
type Deck struct {
	cards     []Card
	discarded []Card
	rng       *rand.Rand
	min       Card
	max       Card
	total     int
	drawn     int
}

// NewDeck builds total consecutive cards starting at lowest. The deck is
// returned unshuffled; setup shuffles and discards separately.
func NewDeck(total, lowest, discard int, rng *rand.Rand) (*Deck, error) {
	if total < 1 {
		return nil, configErrorf("deck needs at least 1 card, got %d", total)
	}
	if lowest < 1 {
		return nil, configErrorf("lowest card must be positive, got %d", lowest)
	}
	if discard >= total {
		return nil, configErrorf("cannot discard %d of %d cards", discard, total)
	}
	if rng == nil {
		return nil, configErrorf("deck requires a random source")
	}

	d := &Deck{
		cards: make([]Card, 0, total),
		rng:   rng,
		min:   Card(lowest),
		max:   Card(lowest + total - 1),
		total: total,
	}
	for i := 0; i < total; i++ {
		d.cards = append(d.cards, Card(lowest+i))
	}
	return d, nil
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Discard removes n cards from the front of the deck, face down.
func (d *Deck) Discard(n int) error {
	if n < 0 || n > len(d.cards) {
		return configErrorf("cannot discard %d cards from %d", n, len(d.cards))
	}
	d.discarded = append(d.discarded, d.cards[:n]...)
	d.cards = d.cards[n:]
	return nil
}

// Draw removes and returns the top card. It returns (NoCard, false) once
// the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return NoCard, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	d.drawn++
	return card, true
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int { return len(d.cards) }

// IsEmpty reports whether no cards are left to draw.
func (d *Deck) IsEmpty() bool { return len(d.cards) == 0 }

// Total is the number of cards the deck was built with.
func (d *Deck) Total() int { return d.total }

func (d *Deck) Discarded() int { return len(d.discarded) }

func (d *Deck) Drawn() int { return d.drawn }

// Min is the lowest card value in the full deck.
func (d *Deck) Min() Card { return d.min }

// Max is the highest card value in the full deck.
func (d *Deck) Max() Card { return d.max }

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []Card { return slices.Clone(d.cards) }

// DiscardedCards returns a copy of the cards removed at setup.
func (d *Deck) DiscardedCards() []Card { return slices.Clone(d.discarded) }
