package evaluator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
)

// Validate checks the deck against its groups before any evaluation.
func Validate[N deck.Name](groups map[N]deck.Group[N], deckSize, handSize int) error {
	total := 0
	for _, g := range groups {
		total += g.Size
	}

	if deckSize < total {
		return fmt.Errorf("%w: card group aggregate size (%d) cannot be greater than deck size (%d)", ErrConfiguration, total, deckSize)
	}
	if handSize < 0 {
		return fmt.Errorf("%w: hand size (%d) must not be negative", ErrConfiguration, handSize)
	}
	if deckSize < handSize {
		return fmt.Errorf("%w: hand size (%d) cannot be greater than deck size (%d)", ErrConfiguration, handSize, deckSize)
	}

	for _, name := range slices.Sorted(maps.Keys(groups)) {
		g := groups[name]
		if g.Minimum < 0 {
			return fmt.Errorf("%w: minimum (%d) in %v must not be negative", ErrConfiguration, g.Minimum, name)
		}
		if g.Maximum > g.Size {
			return fmt.Errorf("%w: maximum (%d) in %v cannot be greater than size (%d)", ErrConfiguration, g.Maximum, name, g.Size)
		}
	}

	return nil
}

// Probability returns the chance of drawing exactly the hand shape c:
// the product of C(size, count) over its elements divided by
// C(deckSize, handSize). Shapes whose counts do not add up to handSize
// have probability zero.
func Probability[N deck.Name](groups map[N]deck.Group[N], c hand.Combination[N], deckSize, handSize int) (float64, error) {
	if err := Validate(groups, deckSize, handSize); err != nil {
		return 0, err
	}
	return exact(groups, c, deckSize, handSize)
}

// Sum returns the total probability of a set of hand shapes.
func Sum[N deck.Name](groups map[N]deck.Group[N], combinations []hand.Combination[N], deckSize, handSize int) (float64, error) {
	if err := Validate(groups, deckSize, handSize); err != nil {
		return 0, err
	}

	total := 0.0
	for _, c := range combinations {
		p, err := exact(groups, c, deckSize, handSize)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// Each returns the probability of every hand shape, index for index.
func Each[N deck.Name](groups map[N]deck.Group[N], combinations []hand.Combination[N], deckSize, handSize int) ([]float64, error) {
	if err := Validate(groups, deckSize, handSize); err != nil {
		return nil, err
	}

	probs := make([]float64, len(combinations))
	for i, c := range combinations {
		p, err := exact(groups, c, deckSize, handSize)
		if err != nil {
			return nil, err
		}
		probs[i] = p
	}
	return probs, nil
}

func exact[N deck.Name](groups map[N]deck.Group[N], c hand.Combination[N], deckSize, handSize int) (float64, error) {
	hands, err := Choose(deckSize, handSize)
	if err != nil {
		return 0, err
	}

	ways := 1.0
	size := 0
	for _, e := range c.Elements() {
		g, ok := groups[e.Name]
		if !ok {
			return 0, fmt.Errorf("%w: hand element %v has no card group", ErrInconsistent, e.Name)
		}
		if e.Count < 0 {
			return 0, fmt.Errorf("%w: count (%d) in %v must not be negative", ErrConfiguration, e.Count, e.Name)
		}

		w, err := Choose(g.Size, e.Count)
		if err != nil {
			return 0, err
		}
		ways *= w
		size += e.Count
	}

	if size != handSize {
		return 0, nil
	}
	return ways / hands, nil
}
