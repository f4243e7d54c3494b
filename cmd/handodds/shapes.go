package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/comparison"
	"github.com/lox/handodds/internal/config"
	"github.com/lox/handodds/internal/hand"
)

type ShapesCmd struct {
	File string `arg:"" type:"existingfile" help:"Deck config (.hcl, .yaml)"`
	Deck string `short:"d" required:"" help:"Deck to list"`
	Sort string `default:"probability" enum:"probability,shape" help:"Order by probability (highest first) or by shape"`
}

type shapeRow struct {
	hand        hand.Combination[string]
	probability float64
}

func (c *ShapesCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	dc, ok := cfg.Deck(c.Deck)
	if !ok {
		return fmt.Errorf("no deck named %q in %s", c.Deck, c.File)
	}
	spec, err := dc.Spec()
	if err != nil {
		return err
	}

	a, err := analyzer.New(spec.Name, spec.HandSize, spec.Groups...)
	if err != nil {
		return err
	}
	g.Logger().Debug("Analyzer built", "name", a.Name(), "shapes", len(a.Combinations()))

	rows := make([]shapeRow, 0, len(a.Combinations()))
	for _, h := range a.Combinations() {
		p, err := a.ProbabilityOfHand(h)
		if err != nil {
			return err
		}
		rows = append(rows, shapeRow{hand: h, probability: p})
	}
	if c.Sort == "probability" {
		slices.SortStableFunc(rows, func(x, y shapeRow) int {
			return cmp.Compare(y.probability, x.probability)
		})
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", "shape", "probability")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.hand, comparison.Probability(r.probability))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\n%s: %s shapes, total %s\n", a.Name(), comparison.Count(len(rows)), comparison.Probability(a.Probability()))
	return err
}
