package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func holding(cards ...Card) Holder {
	return HolderFunc(func(c Card) bool { return slices.Contains(cards, c) })
}

func TestEffectiveValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		hand      Holder
		elsewhere Holder
		remaining int
		pot       int
		want      float64
	}{
		{"bridges two runs", holding(10, 12), holding(), 10, 0, -12},
		{"bridge with pot", holding(10, 12), holding(), 10, 2, -14},
		{"extends run downward", holding(12), holding(), 10, 0, -1},
		{"extends run upward", holding(10), holding(), 10, 0, 0},
		{"gap taken elsewhere", holding(13), holding(12), 10, 0, 11},
		{"gap may still come", holding(13), holding(), 10, 0, -2*(10.0/20) + 11*(1-10.0/20)},
		{"gap with empty deck", holding(13), holding(), 0, 0, 11},
		{"unrelated", holding(20), holding(), 10, 3, 8},
		{"empty hand", holding(), holding(), 10, 0, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EffectiveValue(11, tt.hand, tt.elsewhere, tt.remaining, 20, tt.pot)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRefreshEffectiveValues(t *testing.T) {
	t.Parallel()

	table := NewTestTable(t,
		WithDeck(20, 21),
		WithCardUp(11, 2),
		WithHands([]Card{10}, []Card{12}, []Card{13}),
	)
	table.RefreshEffectiveValues()

	players := table.Players()
	assert.InDelta(t, -2.0, players[0].EffVal, 1e-9)
	assert.InDelta(t, -3.0, players[1].EffVal, 1e-9)
	// 12 is held by player 2, so player 3's gap is dead.
	assert.InDelta(t, 9.0, players[2].EffVal, 1e-9)

	table.cardUp = NoCard
	players[0].EffVal = 99
	table.RefreshEffectiveValues()
	assert.Equal(t, 99.0, players[0].EffVal)
}
