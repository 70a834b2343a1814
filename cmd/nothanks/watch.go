package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nothanks/cmd/nothanks/shared"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/tui"
)

type WatchCmd struct {
	GameFlags `embed:""`

	Seed      *int64        `kong:"help='Random seed (defaults to time-based)'"`
	Human     *int          `kong:"help='Seat (0-based) to play from the keyboard'"`
	Auto      bool          `kong:"help='Start in auto-play mode'"`
	Delay     time.Duration `kong:"default='400ms',help='Delay between auto-play decisions'"`
	Verbosity int           `kong:"short='V',default='2',help='1 narrates the game, 2 adds each decision reason'"`
}

func (c *WatchCmd) Run() error {
	conf, cfg, logger, err := c.load()
	if err != nil {
		return err
	}
	seed := resolveSeed(c.Seed, conf, logger)

	// stderr belongs to the alt screen while the viewer runs
	engine, err := game.NewGame(cfg, seed, log.New(io.Discard))
	if err != nil {
		return err
	}

	opts := tui.Options{
		Auto:      c.Auto,
		Delay:     c.Delay,
		Verbosity: c.Verbosity,
	}
	if c.Human != nil {
		opts.Human = true
		opts.Seat = *c.Human
	}
	m, err := tui.New(engine, opts)
	if err != nil {
		return err
	}

	if err := tui.Run(shared.SetupSignalHandler(), m); err != nil {
		return fmt.Errorf("game %s (seed %d): %w", engine.Table().ID(), seed, err)
	}
	if res := m.Result(); res != nil {
		logger.Info("Game finished", "id", res.GameID, "seed", seed, "steps", res.Steps, "winners", res.Winners)
	}
	return nil
}
