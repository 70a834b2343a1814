package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/nothanks/internal/game"
)

type PlayCmd struct {
	GameFlags `embed:""`

	Seed      *int64 `kong:"help='Random seed (defaults to time-based)'"`
	Verbosity int    `kong:"short='V',default='1',help='0 prints the result as JSON, 1 narrates the game, 2 adds each decision reason'"`
	NoColor   bool   `kong:"help='Disable colored output'"`
}

func (c *PlayCmd) Run() error {
	conf, cfg, logger, err := c.load()
	if err != nil {
		return err
	}
	seed := resolveSeed(c.Seed, conf, logger)

	engine, err := game.NewGame(cfg, seed, logger)
	if err != nil {
		return err
	}
	if c.Verbosity > game.VerbosityQuiet {
		engine.EventBus().Subscribe(game.NewNarrator(os.Stdout, game.NarratorOptions{
			Verbosity: c.Verbosity,
			NoColor:   c.NoColor,
		}))
	}

	result, err := engine.Play()
	if err != nil {
		return fmt.Errorf("game %s (seed %d): %w", engine.Table().ID(), seed, err)
	}
	logger.Info("Game finished", "id", result.GameID, "seed", seed, "steps", result.Steps, "winners", result.Winners)

	if c.Verbosity == game.VerbosityQuiet {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return nil
}
