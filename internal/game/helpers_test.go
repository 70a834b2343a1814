package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/nothanks/internal/randutil"
)

// TestTableOption configures test table creation
type TestTableOption func(*testTableBuilder)

type testTableBuilder struct {
	seed       int64
	deck       []Card
	discarded  []Card
	cardUp     Card
	pot        int
	whoseTurn  int
	hands      [][]Card
	tokens     []int
	thresholds []Thresholds
}

func WithSeed(seed int64) TestTableOption {
	return func(b *testTableBuilder) { b.seed = seed }
}

// WithDeck sets the cards left to draw, in draw order.
func WithDeck(cards ...Card) TestTableOption {
	return func(b *testTableBuilder) { b.deck = cards }
}

func WithDiscarded(cards ...Card) TestTableOption {
	return func(b *testTableBuilder) { b.discarded = cards }
}

func WithCardUp(card Card, pot int) TestTableOption {
	return func(b *testTableBuilder) {
		b.cardUp = card
		b.pot = pot
	}
}

func WithTurn(seat int) TestTableOption {
	return func(b *testTableBuilder) { b.whoseTurn = seat }
}

// WithHands sets one hand per seat; the number of hands is the player count.
func WithHands(hands ...[]Card) TestTableOption {
	return func(b *testTableBuilder) { b.hands = hands }
}

func WithTokens(tokens ...int) TestTableOption {
	return func(b *testTableBuilder) { b.tokens = tokens }
}

func WithThresholds(seat int, th Thresholds) TestTableOption {
	return func(b *testTableBuilder) {
		for len(b.thresholds) <= seat {
			b.thresholds = append(b.thresholds, Thresholds{})
		}
		b.thresholds[seat] = th
	}
}

// NewTestTable builds a mid-game table on the official 3..35 deck. Tokens
// default to the starting balance.
func NewTestTable(t *testing.T, opts ...TestTableOption) *Table {
	t.Helper()
	b := &testTableBuilder{
		seed:   1,
		cardUp: 10,
		hands:  [][]Card{nil, nil, nil},
	}
	for _, opt := range opts {
		opt(b)
	}

	rng := randutil.New(b.seed)
	table := &Table{
		seed:      b.seed,
		cfg:       DefaultConfig(),
		rng:       rng,
		pot:       b.pot,
		whoseTurn: b.whoseTurn,
		cardUp:    b.cardUp,
		deck: &Deck{
			cards:     slices.Clone(b.deck),
			discarded: slices.Clone(b.discarded),
			rng:       rng,
			min:       DefaultOffset,
			max:       DefaultOffset + DefaultCards - 1,
			total:     DefaultCards,
		},
	}

	for seat, hand := range b.hands {
		var th Thresholds
		if seat < len(b.thresholds) {
			th = b.thresholds[seat]
		}
		p, err := NewPlayer(seat, th)
		require.NoError(t, err)
		p.cards = slices.Sorted(slices.Values(hand))
		p.taken = slices.Clone(hand)
		if seat < len(b.tokens) {
			p.Tokens = b.tokens[seat]
		}
		table.players = append(table.players, p)
	}
	table.cfg.AIPlayers = len(table.players)
	return table
}
