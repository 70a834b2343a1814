package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nothanks/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	d, err := NewDeck(33, 3, 9, randutil.New(1))
	require.NoError(t, err)
	assert.Equal(t, 33, d.Remaining())
	assert.Equal(t, Card(3), d.Min())
	assert.Equal(t, Card(35), d.Max())
	assert.Equal(t, Card(3), d.Cards()[0], "unshuffled until asked")
}

func TestNewDeckErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		total, lowest, discard int
	}{
		{"no cards", 0, 3, 0},
		{"zero lowest", 10, 0, 0},
		{"discard everything", 10, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDeck(tt.total, tt.lowest, tt.discard, randutil.New(1))
			require.ErrorIs(t, err, ErrConfig)
		})
	}

	_, err := NewDeck(10, 3, 0, nil)
	require.ErrorIs(t, err, ErrConfig)
}

func TestDeckConservation(t *testing.T) {
	t.Parallel()

	d, err := NewDeck(33, 3, 9, randutil.New(42))
	require.NoError(t, err)
	d.Shuffle()
	require.NoError(t, d.Discard(9))
	assert.Equal(t, 9, d.Discarded())
	assert.Equal(t, 24, d.Remaining())

	var drawn []Card
	for {
		c, ok := d.Draw()
		if !ok {
			assert.Equal(t, NoCard, c)
			break
		}
		drawn = append(drawn, c)
		assert.Equal(t, d.Total(), d.Remaining()+d.Discarded()+d.Drawn())
	}
	assert.True(t, d.IsEmpty())
	assert.Len(t, drawn, 24)

	all := append(drawn, d.DiscardedCards()...)
	slices.Sort(all)
	for i, c := range all {
		assert.Equal(t, Card(3+i), c)
	}
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	t.Parallel()

	a, err := NewDeck(33, 3, 9, randutil.New(7))
	require.NoError(t, err)
	b, err := NewDeck(33, 3, 9, randutil.New(7))
	require.NoError(t, err)
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestDeckDiscardTooMany(t *testing.T) {
	t.Parallel()

	d, err := NewDeck(5, 1, 0, randutil.New(1))
	require.NoError(t, err)
	require.ErrorIs(t, d.Discard(6), ErrConfig)
	require.ErrorIs(t, d.Discard(-1), ErrConfig)
}
