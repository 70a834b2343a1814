package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nothanks/internal/gameid"
	"github.com/lox/nothanks/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// testEventSubscriber captures events for testing
type testEventSubscriber struct {
	events []GameEvent
}

func (s *testEventSubscriber) OnEvent(event GameEvent) {
	s.events = append(s.events, event)
}

func (s *testEventSubscriber) count(et EventType) int {
	n := 0
	for _, e := range s.events {
		if e.EventType() == et {
			n++
		}
	}
	return n
}

func TestPlayFullGame(t *testing.T) {
	t.Parallel()

	engine, err := NewGame(DefaultConfig(), 42, testLogger())
	require.NoError(t, err)
	require.NoError(t, gameid.Validate(engine.Table().ID()))

	res, err := engine.Play()
	require.NoError(t, err)
	require.NotNil(t, res)

	table := engine.Table()
	assert.True(t, table.IsOver())
	assert.Equal(t, 0, table.Pot())
	require.NoError(t, table.ValidateCards())
	require.NoError(t, table.ValidateTokens())

	held := 0
	for _, p := range res.Players {
		held += len(p.Cards)
	}
	assert.Equal(t, 24, held, "every undiscarded card ends in a hand")
	assert.Len(t, res.Discarded, 9)
	assert.NotEmpty(t, res.Winners)
	assert.LessOrEqual(t, res.Steps, engine.MaxSteps())
	assert.Equal(t, int64(42), res.Seed)
	assert.Equal(t, table.ID(), res.GameID)

	done, err := engine.Step()
	require.NoError(t, err)
	assert.True(t, done, "stepping a finished game is a no-op")
}

func TestPlayIsDeterministic(t *testing.T) {
	t.Parallel()

	play := func() *Result {
		engine, err := NewGame(DefaultConfig(), 7, nil)
		require.NoError(t, err)
		res, err := engine.Play()
		require.NoError(t, err)
		return res
	}

	a, b := play(), play()
	assert.Equal(t, a.Players, b.Players)
	assert.Equal(t, a.Winners, b.Winners)
	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.Discarded, b.Discarded)
}

func TestPlayManySeeds(t *testing.T) {
	t.Parallel()

	for _, players := range []int{3, 4, 5} {
		cfg := DefaultConfig()
		cfg.AIPlayers = players
		for seed := int64(0); seed < 50; seed++ {
			engine, err := NewGame(cfg, seed, nil)
			require.NoError(t, err)
			res, err := engine.Play()
			require.NoError(t, err, "seed %d players %d", seed, players)
			require.NoError(t, engine.Table().ValidateCards())

			winners := 0
			for _, p := range res.Players {
				if p.Features.Win != Lose {
					winners++
				}
			}
			assert.Equal(t, len(res.Winners), winners)
		}
	}
}

func TestEngineEvents(t *testing.T) {
	t.Parallel()

	engine, err := NewGame(DefaultConfig(), 3, nil)
	require.NoError(t, err)
	sub := &testEventSubscriber{}
	engine.EventBus().Subscribe(sub)

	res, err := engine.Play()
	require.NoError(t, err)

	require.NotEmpty(t, sub.events)
	assert.Equal(t, EventTypeGameStart, sub.events[0].EventType())
	assert.Equal(t, EventTypeGameEnd, sub.events[len(sub.events)-1].EventType())
	assert.Equal(t, 1, sub.count(EventTypeGameStart))
	assert.Equal(t, 1, sub.count(EventTypeGameEnd))
	assert.Equal(t, res.Steps, sub.count(EventTypePlayerAction))
	// Every take but the last turns up a new card.
	assert.Equal(t, 23, sub.count(EventTypeCardUp))

	start := sub.events[0].(GameStartEvent)
	assert.Len(t, start.Deck, 23)
	assert.True(t, start.CardUp.Valid())

	end := sub.events[len(sub.events)-1].(GameEndEvent)
	assert.Same(t, res, end.Result)
}

func TestEngineScriptedTakes(t *testing.T) {
	t.Parallel()

	table, err := NewTable(DefaultConfig(), randutil.New(1))
	require.NoError(t, err)

	takeAll := DeciderFunc(func(*Table) Decision { return Decision{Take, ReasonScripted} })
	res, err := NewEngine(table, takeAll, nil).Play()
	require.NoError(t, err)

	assert.Equal(t, 24, res.Steps)
	assert.Equal(t, 24, table.Players()[0].HandSize())
	for _, p := range table.Players()[1:] {
		assert.Equal(t, 0, p.Score(), "empty hands score zero")
	}
}

func TestEngineRejectsPassWithoutTokens(t *testing.T) {
	t.Parallel()

	table, err := NewTable(DefaultConfig(), randutil.New(1))
	require.NoError(t, err)

	passAll := DeciderFunc(func(*Table) Decision { return Decision{Pass, ReasonScripted} })
	_, err = NewEngine(table, passAll, nil).Play()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, 0, table.Players()[0].Tokens)
}

func TestEngineStepBound(t *testing.T) {
	t.Parallel()

	table, err := NewTable(DefaultConfig(), randutil.New(1))
	require.NoError(t, err)

	// Pass until broke, then take: a legal game that needs many steps.
	decider := DeciderFunc(func(t *Table) Decision {
		if t.Current().Tokens == 0 {
			return Decision{Take, ReasonNoTokens}
		}
		return Decision{Pass, ReasonScripted}
	})
	engine := NewEngine(table, decider, nil)
	assert.Equal(t, 33*(1+3*StartingTokens), engine.MaxSteps())

	engine.maxSteps = 10
	_, err = engine.Play()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "exceeded 10 steps")
}
