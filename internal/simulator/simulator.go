// Package simulator plays batches of independent seeded games in parallel
// and aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Seed    int64 // game i is seeded Seed+i
	Workers int   // defaults to runtime.NumCPU()
	Game    game.Config
	Logger  *log.Logger
	Clock   quartz.Clock

	// Progress, if set, is called after each finished game. It may be
	// called from several goroutines at once.
	Progress func(done, total int)
}

// Report is the outcome of a simulation run.
type Report struct {
	Results  []*game.Result // in game order, regardless of completion order
	Stats    *statistics.Statistics
	Started  time.Time
	Duration time.Duration
}

// GamesPerSecond is the throughput of the run, or 0 if no time was
// measured.
func (r *Report) GamesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(len(r.Results)) / r.Duration.Seconds()
}

// Simulator runs No Thanks! game simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}
}

// Run plays every game and returns the aggregated report. Cancelling ctx
// stops scheduling new games; games already running finish first.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	// Fail once up front rather than once per game.
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Results: make([]*game.Result, cfg.Games),
		Started: cfg.Clock.Now(),
	}
	s.logger.Info("Starting simulation", "games", cfg.Games, "seed", cfg.Seed, "workers", cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var done atomic.Int64
	for i := range cfg.Games {
		if gctx.Err() != nil {
			break
		}
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.PlayGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			report.Results[i] = res
			n := done.Add(1)
			if cfg.Progress != nil {
				cfg.Progress(int(n), cfg.Games)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil && int(done.Load()) < cfg.Games {
		err = fmt.Errorf("simulation cancelled after %d of %d games: %w", done.Load(), cfg.Games, ctx.Err())
	}
	if err != nil {
		s.logger.Error("Simulation aborted", "completed", done.Load(), "error", err)
		return nil, err
	}

	report.Duration = cfg.Clock.Since(report.Started)
	report.Stats = &statistics.Statistics{}
	for _, res := range report.Results {
		report.Stats.Add(res)
	}
	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "games", cfg.Games, "duration", report.Duration, "ties", report.Stats.TiedGames)
	return report, nil
}

// PlayGame plays a single game with the given seed.
func (s *Simulator) PlayGame(seed int64) (*game.Result, error) {
	engine, err := game.NewGame(s.config.Game, seed, s.config.Logger)
	if err != nil {
		return nil, err
	}
	res, err := engine.Play()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Game finished", "seed", seed, "steps", res.Steps, "winners", res.Winners)
	return res, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, games int, seed int64, cfg game.Config, logger *log.Logger) (*Report, error) {
	return New(Config{
		Games:  games,
		Seed:   seed,
		Game:   cfg,
		Logger: logger,
	}).Run(ctx)
}
