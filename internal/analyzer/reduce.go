package analyzer

import (
	"fmt"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
)

// Remove returns a new analyzer over the deck left after drawing c, with the
// same name and hand size. Groups drawn out completely are dropped; every
// other group of c, drawn or not, is rebuilt with resize, or deck.Shrink when
// resize is nil.
func (a *Analyzer[N]) Remove(c hand.Combination[N], resize deck.Resizer[N]) (*Analyzer[N], error) {
	d := a.deck
	for _, e := range c.Elements() {
		var err error
		if d, err = d.Draw(e.Name, e.Count, resize); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeck, a.name, err)
		}
	}
	return FromDeck(a.name, a.handSize, d)
}

// RemoveCard returns a new analyzer with one copy of the named group drawn.
func (a *Analyzer[N]) RemoveCard(name N, resize deck.Resizer[N]) (*Analyzer[N], error) {
	d, err := a.deck.Draw(name, 1, resize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeck, a.name, err)
	}
	return FromDeck(a.name, a.handSize, d)
}

// ChainedProbability returns the probability that, given the opening hand
// holds trigger, a fresh hand drawn from the remaining deck holds at least
// one of desired.
func (a *Analyzer[N]) ChainedProbability(trigger N, desired []N, resize deck.Resizer[N]) (float64, error) {
	withTrigger := a.ProbabilityOf(func(c hand.Combination[N]) bool {
		return c.HasCard(trigger)
	})
	if withTrigger == 0 {
		return 0, nil
	}

	hit := hand.Any(desired...)
	total := 0.0
	for i, c := range a.combinations {
		if !c.HasCard(trigger) {
			continue
		}
		rest, err := a.Remove(c, resize)
		if err != nil {
			return 0, fmt.Errorf("drawing again after %v: %w", c, err)
		}
		total += a.probs[i] * rest.ProbabilityOf(hit)
	}

	return total / withTrigger, nil
}
