package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"postrainer.hcl" help:"Path to HCL configuration file (missing file uses defaults)"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Drill   DrillCmd         `cmd:"" default:"withargs" help:"Run the interactive position drill"`
	Serve   ServeCmd         `cmd:"" help:"Serve drill sessions over WebSocket"`
	Quiz    QuizCmd          `cmd:"" help:"Print generated rounds with their answers"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("postrainer"),
		kong.Description("Table position trainer: seats, position names and who is in position"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
