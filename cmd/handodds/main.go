package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Compare CompareCmd       `cmd:"" help:"Compare every deck in a config file"`
	Shapes  ShapesCmd        `cmd:"" help:"List every hand shape of one deck"`
	Check   CheckCmd         `cmd:"" help:"Validate a config file and build its decks"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("handodds"),
		kong.Description("Exact opening-hand probabilities for partitioned decks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
