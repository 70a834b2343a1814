package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nothanks/internal/gameid"
	"github.com/lox/nothanks/internal/randutil"
)

// Engine drives a table from the first face-up card to the final score.
type Engine struct {
	table    *Table
	decider  Decider
	logger   *log.Logger
	eventBus *SimpleEventBus
	started  bool
	steps    int
	maxSteps int
	result   *Result
}

// NewGame wires a seeded table, the heuristic policy and an engine. The
// game ID draws its random bits from the same seeded source.
func NewGame(cfg Config, seed int64, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := randutil.New(seed)

	table, err := NewTable(cfg, rng)
	if err != nil {
		return nil, err
	}
	table.seed = seed
	id, err := gameid.New(randutil.NewReader(rng))
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}
	table.id = id

	return NewEngine(table, NewPolicy(rng, logger, cfg.Policy), logger), nil
}

// NewEngine creates an engine for an already set-up table.
func NewEngine(table *Table, decider Decider, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Every pass moves one token, so a card can circle at most once per
	// token in play before someone is forced to take it.
	perCard := 1 + table.NumPlayers()*StartingTokens
	return &Engine{
		table:    table,
		decider:  decider,
		logger:   logger.WithPrefix("engine").With("game", table.ID()),
		eventBus: NewEventBus(),
		maxSteps: table.Deck().Total() * perCard,
	}
}

// EventBus returns the bus events are published on.
func (e *Engine) EventBus() EventBus { return e.eventBus }

// Decider returns the decider consulted for every seat.
func (e *Engine) Decider() Decider { return e.decider }

// SetDecider replaces the decider, typically to wrap the policy so some
// seats are decided elsewhere.
func (e *Engine) SetDecider(d Decider) { e.decider = d }

// Table returns the table being played.
func (e *Engine) Table() *Table { return e.table }

// Steps is the number of decisions applied so far.
func (e *Engine) Steps() int { return e.steps }

// MaxSteps bounds the decisions any valid game can take.
func (e *Engine) MaxSteps() int { return e.maxSteps }

// Result is nil until the game is over.
func (e *Engine) Result() *Result { return e.result }

// Step resolves one decision for the current player. It returns done once
// the last card has been resolved and the game scored.
func (e *Engine) Step() (done bool, err error) {
	t := e.table
	if e.result != nil {
		return true, nil
	}
	if !e.started {
		e.started = true
		e.eventBus.Publish(NewGameStartEvent(t))
	}
	if e.steps >= e.maxSteps {
		return false, invariantErrorf("game exceeded %d steps without finishing", e.maxSteps)
	}

	t.RefreshEffectiveValues()
	p := t.Current()
	decision := e.decider.Decide(t)

	event := PlayerActionEvent{
		Player: p,
		Action: decision.Action,
		Reason: decision.Reason,
		Card:   t.CardUp(),
		EffVal: p.EffVal,
		Hand:   p.Cards(),
		Pot:    t.Pot(),
	}

	over := false
	switch decision.Action {
	case Take:
		over, err = t.Take()
	case Pass:
		err = t.Pass()
	default:
		err = invariantErrorf("unknown action %d", decision.Action)
	}
	if err != nil {
		e.logger.Error("Failed to apply decision", "player", p.DisplayName(), "action", decision.Action, "error", err)
		return false, err
	}
	e.steps++

	event.PotAfter = t.Pot()
	event.timestamp = time.Now()
	e.eventBus.Publish(event)

	if err := t.ValidateTokens(); err != nil {
		e.logger.Error("Token conservation violation detected!", "error", err)
		return false, err
	}

	if over {
		e.result = t.Finish()
		e.result.Steps = e.steps
		e.logger.Debug("Game complete", "steps", e.steps, "winners", e.result.Winners)
		e.eventBus.Publish(NewGameEndEvent(e.result, t.Players()))
		return true, nil
	}
	if decision.Action == Take {
		e.eventBus.Publish(NewCardUpEvent(t.CardUp(), t.Deck().Remaining()))
	}
	return false, nil
}

// Play runs the game to completion.
func (e *Engine) Play() (*Result, error) {
	for {
		done, err := e.Step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", e.steps+1, err)
		}
		if done {
			return e.result, nil
		}
	}
}
