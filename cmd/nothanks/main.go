package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a single game"`
	Simulate SimulateCmd      `cmd:"" help:"Play many games and summarize the results"`
	Watch    WatchCmd         `cmd:"" help:"Step through a game in the terminal, optionally playing a seat"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nothanks"),
		kong.Description("Simulator for the No Thanks! card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
