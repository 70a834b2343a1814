package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []Card
		runs  [][]Card
		total int
	}{
		{"empty", nil, nil, 0},
		{"single", []Card{7}, [][]Card{{7}}, 7},
		{"one run", []Card{7, 8, 9}, [][]Card{{7, 8, 9}}, 7},
		{"mixed", []Card{5, 6, 9, 14, 15, 16}, [][]Card{{5, 6}, {9}, {14, 15, 16}}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.runs, Runs(tt.cards))
			assert.Equal(t, tt.total, RunTotal(tt.cards))
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	p, err := NewPlayer(0, Thresholds{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Score(), "empty hand scores zero regardless of tokens")

	for _, c := range []Card{16, 5, 14, 9, 6, 15} {
		p.TakeCard(c, 0)
	}
	p.Tokens = 3
	assert.Equal(t, 25, p.Score())
	assert.Equal(t, []Card{5, 6, 9, 14, 15, 16}, p.Cards())
	assert.Equal(t, []Card{16, 5, 14, 9, 6, 15}, p.TakenOrder())
	assert.Equal(t, 3, p.RunCount())
}

func TestPlayerTokens(t *testing.T) {
	t.Parallel()

	p, err := NewPlayer(1, Thresholds{Token: 4})
	require.NoError(t, err)
	assert.Equal(t, "Player 2", p.DisplayName())
	assert.Equal(t, StartingTokens, p.Tokens)

	for range StartingTokens {
		require.NoError(t, p.PlayToken())
	}
	err = p.PlayToken()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, 0, p.Tokens)

	p.TakeCard(20, 5)
	assert.Equal(t, 5, p.Tokens)
	assert.Equal(t, 5, p.TokenHistory[len(p.TokenHistory)-1])
	assert.Len(t, p.TokenHistory, StartingTokens+2)
	assert.True(t, p.Has(20))
	assert.False(t, p.Has(21))
}

func TestNewPlayerRejectsTokenThreshold(t *testing.T) {
	t.Parallel()

	_, err := NewPlayer(0, Thresholds{Token: MaxTokenThreshold + 1})
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewPlayer(-1, Thresholds{})
	require.ErrorIs(t, err, ErrConfig)
}

func TestFormatCards(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[]", FormatCards(nil))
	assert.Equal(t, "[3 4 9]", FormatCards([]Card{3, 4, 9}))
	assert.Equal(t, "-", NoCard.String())
}
