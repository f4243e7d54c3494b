package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/comparison"
	"github.com/lox/handodds/internal/config"
)

type CompareCmd struct {
	File       string   `arg:"" type:"existingfile" help:"Deck config (.hcl, .yaml)"`
	Decks      []string `short:"d" help:"Only compare these decks"`
	Sequential bool     `help:"Evaluate categories one at a time"`
}

func (c *CompareCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	logger := g.Logger()

	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	if len(cfg.Categories) == 0 {
		return errors.New("config defines no categories to compare")
	}

	specs, err := cfg.Specs()
	if err != nil {
		return err
	}
	if len(c.Decks) > 0 {
		for _, name := range c.Decks {
			if _, ok := cfg.Deck(name); !ok {
				return fmt.Errorf("no deck named %q in %s", name, c.File)
			}
		}
		specs = slices.DeleteFunc(specs, func(s analyzer.Spec[string]) bool {
			return !slices.Contains(c.Decks, s.Name)
		})
	}

	analyzers, err := analyzer.BuildAll(ctx, specs, analyzer.WithWorkers(g.Workers), analyzer.WithLogger(logger))
	if err != nil {
		return err
	}

	report := comparison.New(analyzers,
		comparison.WithWorkers(g.Workers),
		comparison.WithLogger(logger),
	).Add(cfg.Report()...)

	var res *comparison.Result
	if c.Sequential {
		res, err = report.Run()
	} else {
		res, err = report.RunParallel(ctx)
	}
	if err != nil {
		return err
	}

	return res.Render(out, !g.NoColor)
}
