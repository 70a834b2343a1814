package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nothanks/internal/game"
)

func TestSample_Empty(t *testing.T) {
	var s Sample

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.5))
}

func TestSample_SingleValue(t *testing.T) {
	var s Sample
	s.Add(2.5)

	assert.Equal(t, 2.5, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Equal(t, 2.5, s.Median())
	lo, hi := s.ConfidenceInterval95()
	assert.Equal(t, 2.5, lo)
	assert.Equal(t, 2.5, hi)
}

func TestSample_Values(t *testing.T) {
	var s Sample
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	assert.Equal(t, 5.0, s.Mean())
	assert.InDelta(t, 32.0/7, s.Variance(), 1e-9)
	assert.InDelta(t, 4.5, s.Median(), 1e-9)
	assert.Equal(t, 2.0, s.Percentile(0))
	assert.Equal(t, 9.0, s.Percentile(1))
	assert.InDelta(t, 4.5, s.Percentile(0.5), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
	assert.InDelta(t, s.Mean()-lo, hi-s.Mean(), 1e-9)
}

func result(steps int, players ...game.PlayerResult) *game.Result {
	res := &game.Result{Steps: steps, Players: players}
	for i, p := range players {
		if p.Features.Win != game.Lose {
			res.Winners = append(res.Winners, i)
		}
	}
	return res
}

func player(win game.Outcome, score, tokens int) game.PlayerResult {
	return game.PlayerResult{
		Tokens:   tokens,
		Features: game.Features{Win: win, Score: score, HandSize: 3, Runs: 2},
	}
}

func TestStatistics_Add(t *testing.T) {
	var s Statistics
	s.Add(result(40, player(game.Win, 10, 5), player(game.Lose, 30, 20), player(game.Lose, 40, 8)))
	s.Add(result(50, player(game.Tie, 12, 5), player(game.Tie, 12, 12), player(game.Lose, 50, 16)))

	require.NoError(t, s.Validate())
	assert.Equal(t, 2, s.Games)
	assert.Equal(t, 1, s.TiedGames)
	assert.Equal(t, 45.0, s.Steps.Mean())
	require.Len(t, s.Seats, 3)

	seat0 := s.Seats[0]
	assert.Equal(t, 1, seat0.Wins)
	assert.Equal(t, 1, seat0.Ties)
	assert.Equal(t, 0.5, seat0.WinRate())
	assert.Equal(t, 0.5, seat0.TieRate())
	assert.Equal(t, 11.0, seat0.Score.Mean())

	assert.Zero(t, s.Seats[2].WinRate())
	assert.Equal(t, 12.0, s.Seats[2].Tokens.Mean())
	assert.Equal(t, 3.0, s.Seats[1].HandSize.Mean())
}

func TestStatistics_Validate(t *testing.T) {
	var empty Statistics
	require.Error(t, empty.Validate())

	var s Statistics
	s.Add(result(40, player(game.Win, 10, 5), player(game.Lose, 30, 20), player(game.Lose, 40, 8)))
	s.Seats[1].Wins++
	assert.ErrorContains(t, s.Validate(), "outright wins")

	var short Statistics
	short.Add(result(40, player(game.Win, 10, 5), player(game.Lose, 30, 20), player(game.Lose, 40, 8)))
	short.Seats[2].Games--
	assert.ErrorContains(t, short.Validate(), "seat 2 played 0 games")
}

func TestStatistics_RealGames(t *testing.T) {
	var s Statistics
	for seed := int64(0); seed < 20; seed++ {
		engine, err := game.NewGame(game.DefaultConfig(), seed, nil)
		require.NoError(t, err)
		res, err := engine.Play()
		require.NoError(t, err)
		s.Add(res)
	}
	require.NoError(t, s.Validate())
	assert.Equal(t, 20, s.Games)
}
