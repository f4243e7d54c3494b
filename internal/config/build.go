package config

import (
	"fmt"
	"slices"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/comparison"
	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
)

func (g GroupConfig) bounds() (int, int) {
	lo, hi := 0, g.Size
	if g.Min != nil {
		lo = *g.Min
	}
	if g.Max != nil {
		hi = *g.Max
	}
	return lo, hi
}

// Group converts the configuration into a card group.
func (g GroupConfig) Group() (deck.Group[string], error) {
	lo, hi := g.bounds()
	return deck.NewGroup(g.Name, g.Size, lo, hi)
}

// Deck builds the deck, padded with the filler group when deck_size is set.
func (d DeckConfig) Deck() (deck.Deck[string], error) {
	groups := make([]deck.Group[string], 0, len(d.Groups))
	for _, gc := range d.Groups {
		g, err := gc.Group()
		if err != nil {
			return deck.Deck[string]{}, fmt.Errorf("deck %q: %w", d.Name, err)
		}
		groups = append(groups, g)
	}

	built, err := deck.New(groups...)
	if err != nil {
		return deck.Deck[string]{}, fmt.Errorf("deck %q: %w", d.Name, err)
	}
	if d.DeckSize == 0 {
		return built, nil
	}

	built, err = built.WithFiller(d.Filler, d.DeckSize)
	if err != nil {
		return deck.Deck[string]{}, fmt.Errorf("deck %q: %w", d.Name, err)
	}
	return built, nil
}

// Spec describes the analyzer for this deck.
func (d DeckConfig) Spec() (analyzer.Spec[string], error) {
	built, err := d.Deck()
	if err != nil {
		return analyzer.Spec[string]{}, err
	}
	return analyzer.Spec[string]{Name: d.Name, HandSize: d.HandSize, Groups: built.Groups()}, nil
}

// Specs describes an analyzer for every deck, in file order.
func (f *File) Specs() ([]analyzer.Spec[string], error) {
	specs := make([]analyzer.Spec[string], 0, len(f.Decks))
	for _, d := range f.Decks {
		spec, err := d.Spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// uniqueCount counts the distinct groups in a hand. With unique_of set only
// those groups count; otherwise every group but the fillers does.
func (c CategoryConfig) uniqueCount(fillers []string) func(hand.Combination[string]) int {
	if len(c.UniqueOf) > 0 {
		names := c.UniqueOf
		return func(h hand.Combination[string]) int { return h.CountNamesIn(names...) }
	}
	return func(h hand.Combination[string]) int {
		return h.UniqueNames() - h.CountNamesIn(fillers...)
	}
}

// Predicate selects the hands the category counts. Groups named in fillers
// are not counted towards min_unique.
func (c CategoryConfig) Predicate(fillers ...string) hand.Predicate[string] {
	var preds []hand.Predicate[string]
	if len(c.AnyOf) > 0 {
		preds = append(preds, hand.Any(c.AnyOf...))
	}
	if len(c.AllOf) > 0 {
		preds = append(preds, hand.All(c.AllOf...))
	}
	if len(c.NoneOf) > 0 {
		preds = append(preds, hand.None(c.NoneOf...))
	}
	if c.MinUnique > 0 {
		minUnique, count := c.MinUnique, c.uniqueCount(fillers)
		preds = append(preds, func(h hand.Combination[string]) bool {
			return count(h) >= minUnique
		})
	}
	return hand.And(preds...)
}

// Category builds the report row, leaving fillers out of unique counts.
func (c CategoryConfig) Category(fillers ...string) comparison.Category[string] {
	pred := c.Predicate(fillers...)
	if c.Kind == KindExpectedUnique {
		count := c.uniqueCount(fillers)
		return comparison.ExpectedCategory(c.Name, func(h hand.Combination[string]) float64 {
			if !pred(h) {
				return 0
			}
			return float64(count(h))
		})
	}
	return comparison.ProbabilityCategory(c.Name, pred)
}

// Fillers returns the filler group names added to padded decks. A name that
// is a real group in any deck is not a filler.
func (f *File) Fillers() []string {
	var fillers []string
	for _, d := range f.Decks {
		if d.DeckSize > 0 && !slices.Contains(fillers, d.Filler) && !f.hasGroup(d.Filler) {
			fillers = append(fillers, d.Filler)
		}
	}
	return fillers
}

func (f *File) hasGroup(name string) bool {
	for _, d := range f.Decks {
		for _, g := range d.Groups {
			if g.Name == name {
				return true
			}
		}
	}
	return false
}

// Report builds every report row, in file order.
func (f *File) Report() []comparison.Category[string] {
	fillers := f.Fillers()
	categories := make([]comparison.Category[string], len(f.Categories))
	for i, c := range f.Categories {
		categories[i] = c.Category(fillers...)
	}
	return categories
}
