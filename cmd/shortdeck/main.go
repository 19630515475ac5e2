package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"shortdeck.hcl" help:"HCL configuration file (defaults apply when missing)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Bench   BenchCmd         `cmd:"" default:"1" help:"Exhaustive comparison then Monte Carlo runs for each configured matchup"`
	Compare CompareCmd       `cmd:"" help:"Compare two hands exhaustively or by sampling"`
	Ranges  RangesCmd        `cmd:"" help:"Estimate one hand range against another by sampling"`
	Table   TableCmd         `cmd:"" help:"Inspect a strength table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("shortdeck"),
		kong.Description("Hold'em equity from a precomputed seven card strength table"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
