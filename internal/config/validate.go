package config

import (
	"fmt"
	"strings"
)

// Validate checks the semantic constraints of a configuration and reports
// every problem found.
func Validate(cfg *File) error {
	var errs []string

	if len(cfg.Decks) == 0 {
		errs = append(errs, "at least one deck is required")
	}

	decks := make(map[string]bool)
	for i, d := range cfg.Decks {
		where := fmt.Sprintf("deck[%d] %q", i, d.Name)
		if d.Name == "" {
			errs = append(errs, fmt.Sprintf("deck[%d]: name is required", i))
		}
		if decks[d.Name] {
			errs = append(errs, where+": duplicate deck name")
		}
		decks[d.Name] = true

		if d.HandSize < 0 {
			errs = append(errs, fmt.Sprintf("%s: hand_size must be >= 0, got %d", where, d.HandSize))
		}
		if len(d.Groups) == 0 && d.DeckSize == 0 {
			errs = append(errs, where+": needs at least one group or a deck_size")
		}

		total := 0
		groups := make(map[string]bool)
		for _, g := range d.Groups {
			gw := fmt.Sprintf("%s group %q", where, g.Name)
			if g.Name == "" {
				errs = append(errs, where+": group name is required")
			}
			if groups[g.Name] {
				errs = append(errs, gw+": duplicate group name")
			}
			groups[g.Name] = true
			total += g.Size

			if g.Size < 0 {
				errs = append(errs, fmt.Sprintf("%s: size must be >= 0, got %d", gw, g.Size))
			}
			lo, hi := g.bounds()
			if lo < 0 {
				errs = append(errs, fmt.Sprintf("%s: min must be >= 0, got %d", gw, lo))
			}
			if hi > g.Size {
				errs = append(errs, fmt.Sprintf("%s: max (%d) must be <= size (%d)", gw, hi, g.Size))
			}
			if lo > hi {
				errs = append(errs, fmt.Sprintf("%s: min (%d) must be <= max (%d)", gw, lo, hi))
			}
		}

		if d.DeckSize != 0 {
			if d.DeckSize < total {
				errs = append(errs, fmt.Sprintf("%s: deck_size (%d) is smaller than its groups (%d)", where, d.DeckSize, total))
			}
			if groups[d.Filler] {
				errs = append(errs, fmt.Sprintf("%s: filler %q clashes with a group", where, d.Filler))
			}
		}
	}

	categories := make(map[string]bool)
	for i, c := range cfg.Categories {
		where := fmt.Sprintf("category[%d] %q", i, c.Name)
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("category[%d]: name is required", i))
		}
		if categories[c.Name] {
			errs = append(errs, where+": duplicate category name")
		}
		categories[c.Name] = true

		switch c.Kind {
		case KindProbability, KindExpectedUnique:
		default:
			errs = append(errs, fmt.Sprintf("%s: kind must be one of: %s, %s", where, KindProbability, KindExpectedUnique))
		}
		if c.MinUnique < 0 {
			errs = append(errs, fmt.Sprintf("%s: min_unique must be >= 0, got %d", where, c.MinUnique))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
