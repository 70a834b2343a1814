package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/nothanks/cmd/nothanks/shared"
	"github.com/lox/nothanks/internal/config"
	"github.com/lox/nothanks/internal/game"
)

// GameFlags are shared by every command that builds a table. Flags override
// the config file.
type GameFlags struct {
	Config    string `kong:"short='c',default='nothanks.hcl',help='HCL configuration file (optional)'"`
	Cards     *int   `kong:"help='Number of distinct cards in the deck'"`
	Offset    *int   `kong:"help='Lowest card value'"`
	Discard   *int   `kong:"help='Cards removed unseen before play'"`
	AIPlayers *int   `kong:"name='ai-players',help='Generated AI players besides configured ones'"`
	LogLevel  string `kong:"help='Log level (debug, info, warn, error)'"`
}

func (f *GameFlags) load() (*config.Config, game.Config, *log.Logger, error) {
	c, err := config.Load(f.Config)
	if err != nil {
		return nil, game.Config{}, nil, err
	}
	if f.Cards != nil {
		c.Game.Cards = f.Cards
	}
	if f.Offset != nil {
		c.Game.Offset = f.Offset
	}
	if f.Discard != nil {
		c.Game.Discard = f.Discard
	}
	if f.AIPlayers != nil {
		c.Game.AIPlayers = f.AIPlayers
	}
	if f.LogLevel != "" {
		c.Game.LogLevel = f.LogLevel
	}
	if err := c.Validate(); err != nil {
		return nil, game.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := c.LogLevel()
	if err != nil {
		return nil, game.Config{}, nil, err
	}
	logger := shared.SetupLogger(level)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logger = shared.SetupStructuredLogger(os.Stderr, level)
	}

	gameCfg, err := c.GameConfig()
	if err != nil {
		return nil, game.Config{}, nil, err
	}
	return c, gameCfg, logger, nil
}

// resolveSeed prefers the flag, then the config file, then the clock.
func resolveSeed(flag *int64, c *config.Config, logger *log.Logger) int64 {
	switch {
	case flag != nil:
		return *flag
	case c.Simulation.Seed != nil:
		return *c.Simulation.Seed
	}
	seed := time.Now().UnixNano()
	logger.Debug("Using time-based seed", "seed", seed)
	return seed
}
