package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/comparison"
	"github.com/lox/handodds/internal/config"
)

type CheckCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Deck configs (.hcl, .yaml)"`
}

func (c *CheckCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	logger := g.Logger()

	for _, file := range c.Files {
		cfg, err := config.Load(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		specs, err := cfg.Specs()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		analyzers, err := analyzer.BuildAll(ctx, specs, analyzer.WithWorkers(g.Workers), analyzer.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		fmt.Fprintf(out, "%s: %d decks, %d categories\n", file, len(analyzers), len(cfg.Categories))
		for _, a := range analyzers {
			fmt.Fprintf(out, "  %s: deck %d, hand %d, %s shapes, whole space %s\n",
				a.Name(), a.DeckSize(), a.HandSize(), comparison.Count(len(a.Combinations())), comparison.Probability(a.Probability()))
		}
	}
	return nil
}
