// Package config loads game and simulation settings from HCL.
//
//	game {
//	  cards      = 33
//	  offset     = 3
//	  discard    = 9
//	  ai_players = 3
//	  log_level  = "info"
//	}
//
//	ai {
//	  eff_val_threshold = [0, 6]
//	  pot_threshold     = [6, 20]
//	  milk_margin       = 4
//	}
//
//	player "alice" {
//	  position       = 0
//	  init_threshold = 10
//	}
//
//	simulation {
//	  games   = 1000
//	  workers = 8
//	}
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/nothanks/internal/game"
)

const (
	DefaultLogLevel = "info"
	DefaultGames    = 1000
)

// Config represents the complete configuration file
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	AI         *AISettings         `hcl:"ai,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings describes the deck and table size
type GameSettings struct {
	Cards     *int   `hcl:"cards,optional"`
	Offset    *int   `hcl:"offset,optional"`
	Discard   *int   `hcl:"discard,optional"`
	AIPlayers *int   `hcl:"ai_players,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// AISettings bounds the randomized thresholds of generated players and
// tunes the shared policy. Ranges are two-element [min, max] lists.
type AISettings struct {
	InitThreshold    []int `hcl:"init_threshold,optional"`
	EffValThreshold  []int `hcl:"eff_val_threshold,optional"`
	TokenThreshold   []int `hcl:"token_threshold,optional"`
	PotThreshold     []int `hcl:"pot_threshold,optional"`
	MilkMargin       *int  `hcl:"milk_margin,optional"`
	VindictiveMargin []int `hcl:"vindictive_margin,optional"`
}

// PlayerConfig pins a named player with fixed thresholds to a seat
type PlayerConfig struct {
	Name            string `hcl:"name,label"`
	Position        int    `hcl:"position"`
	InitThreshold   int    `hcl:"init_threshold"`
	EffValThreshold int    `hcl:"eff_val_threshold,optional"`
	TokenThreshold  int    `hcl:"token_threshold,optional"`
	PotThreshold    int    `hcl:"pot_threshold,optional"`
}

// SimulationSettings controls batch runs
type SimulationSettings struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    *int64 `hcl:"seed,optional"`
}

// Default returns the official game with three generated players.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.AI == nil {
		c.AI = &AISettings{}
	}
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}

	g := c.Game
	if g.Cards == nil {
		g.Cards = ptr(game.DefaultCards)
	}
	if g.Offset == nil {
		g.Offset = ptr(game.DefaultOffset)
	}
	if g.Discard == nil {
		g.Discard = ptr(game.DefaultDiscard)
	}
	if g.AIPlayers == nil {
		// Named players take seats from the generated ones.
		g.AIPlayers = ptr(max(game.DefaultAIPlayers-len(c.Players), 0))
	}
	if g.LogLevel == "" {
		g.LogLevel = DefaultLogLevel
	}

	if c.Simulation.Games == 0 {
		c.Simulation.Games = DefaultGames
	}
}

// LogLevel returns the parsed game.log_level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.Game.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log_level %q", c.Game.LogLevel)
	}
	return level, nil
}

// GameConfig converts the file into a validated game configuration.
func (c *Config) GameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	cfg.Cards = *c.Game.Cards
	cfg.Offset = *c.Game.Offset
	cfg.Discard = *c.Game.Discard
	cfg.AIPlayers = *c.Game.AIPlayers

	ranges := []struct {
		name string
		src  []int
		dst  *game.Range
	}{
		{"init_threshold", c.AI.InitThreshold, &cfg.AI.Init},
		{"eff_val_threshold", c.AI.EffValThreshold, &cfg.AI.EffVal},
		{"token_threshold", c.AI.TokenThreshold, &cfg.AI.Token},
		{"pot_threshold", c.AI.PotThreshold, &cfg.AI.Pot},
		{"vindictive_margin", c.AI.VindictiveMargin, &cfg.Policy.VindictiveMargin},
	}
	for _, r := range ranges {
		if r.src == nil {
			continue
		}
		if len(r.src) != 2 {
			return game.Config{}, fmt.Errorf("ai.%s must be [min, max], got %d values", r.name, len(r.src))
		}
		*r.dst = game.Range{Min: r.src[0], Max: r.src[1]}
	}
	if c.AI.MilkMargin != nil {
		cfg.Policy.MilkMargin = *c.AI.MilkMargin
	}

	for _, p := range c.Players {
		cfg.Seats = append(cfg.Seats, game.SeatConfig{
			Seat: p.Position,
			Name: p.Name,
			Thresholds: game.Thresholds{
				Init:   p.InitThreshold,
				EffVal: p.EffValThreshold,
				Token:  p.TokenThreshold,
				Pot:    p.PotThreshold,
			},
		})
	}

	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.GameConfig(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation.games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers cannot be negative, got %d", c.Simulation.Workers)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
