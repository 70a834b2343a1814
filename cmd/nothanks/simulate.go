package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lox/nothanks/cmd/nothanks/shared"
	"github.com/lox/nothanks/internal/report"
	"github.com/lox/nothanks/internal/simulator"
)

type SimulateCmd struct {
	GameFlags `embed:""`

	Games      *int   `kong:"short='n',help='Number of games to play'"`
	Workers    *int   `kong:"short='w',help='Concurrent games (defaults to the number of CPUs)'"`
	Seed       *int64 `kong:"help='Seed of the first game; game i uses seed+i'"`
	Output     string `kong:"short='o',help='Write per-game results to this file'"`
	Format     string `kong:"help='Output format (json or csv); guessed from the file extension when empty'"`
	NoColor    bool   `kong:"help='Disable colored output'"`
	NoProgress bool   `kong:"help='Hide the progress bar'"`
}

func (c *SimulateCmd) Run() error {
	conf, cfg, logger, err := c.load()
	if err != nil {
		return err
	}

	format := report.FormatFromPath(c.Output)
	if c.Format != "" {
		if format, err = report.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	games := conf.Simulation.Games
	if c.Games != nil {
		games = *c.Games
	}
	workers := conf.Simulation.Workers
	if c.Workers != nil {
		workers = *c.Workers
	}
	seed := resolveSeed(c.Seed, conf, logger)

	simConfig := simulator.Config{
		Games:   games,
		Seed:    seed,
		Workers: workers,
		Game:    cfg,
		Logger:  logger,
	}
	var bar *progressBar
	if !c.NoProgress && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = newProgressBar(os.Stderr, c.NoColor)
		simConfig.Progress = bar.Update
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	logger.Debug("Loaded configuration", "file", c.Config, "players", cfg.NumPlayers(), "cards", cfg.Cards, "discard", cfg.Discard, "format", format)

	r, err := simulator.New(simConfig).Run(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if err := report.RenderSummary(os.Stdout, r, report.SummaryOptions{NoColor: c.NoColor}); err != nil {
		return err
	}

	if c.Output != "" {
		if err := report.WriteFile(c.Output, format, r); err != nil {
			return err
		}
		logger.Info("Wrote results", "path", c.Output, "format", format, "games", len(r.Results))
	}
	return nil
}
