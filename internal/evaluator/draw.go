package evaluator

import (
	"fmt"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
)

// Draw asks for between Min and Max cards (inclusive) of one group.
type Draw[N deck.Name] struct {
	Name N
	Min  int
	Max  int
}

// Bounds is the draw allowed by a group's own bounds.
func Bounds[N deck.Name](g deck.Group[N]) Draw[N] {
	return Draw[N]{Name: g.Name, Min: g.Minimum, Max: g.Maximum}
}

// Free is a draw of any number of cards from a group.
func Free[N deck.Name](g deck.Group[N]) Draw[N] {
	return Draw[N]{Name: g.Name, Min: 0, Max: g.Size}
}

// DrawsOf reads a hand shape as ranges: each element's count up to its
// carried bound.
func DrawsOf[N deck.Name](c hand.Combination[N]) []Draw[N] {
	elements := c.Elements()
	draws := make([]Draw[N], len(elements))
	for i, e := range elements {
		draws[i] = Draw[N]{Name: e.Name, Min: e.Count, Max: e.Bound}
	}
	return draws
}

// ExactDraws reads a hand shape as single-value ranges.
func ExactDraws[N deck.Name](c hand.Combination[N]) []Draw[N] {
	elements := c.Elements()
	draws := make([]Draw[N], len(elements))
	for i, e := range elements {
		draws[i] = Draw[N]{Name: e.Name, Min: e.Count, Max: e.Count}
	}
	return draws
}

// ProbabilityOfDraws returns the chance that a hand of handSize cards holds
// a count within range for every draw. Groups without a draw contribute no
// cards. Each count in a range is tried in turn; branches that overshoot the
// hand size, or run out of draws short of it, contribute nothing.
func ProbabilityOfDraws[N deck.Name](groups map[N]deck.Group[N], draws []Draw[N], deckSize, handSize int) (float64, error) {
	if err := Validate(groups, deckSize, handSize); err != nil {
		return 0, err
	}

	sizes := make([]int, len(draws))
	for i, d := range draws {
		g, ok := groups[d.Name]
		if !ok {
			return 0, fmt.Errorf("%w: draw %v has no card group", ErrInconsistent, d.Name)
		}
		if d.Min < 0 {
			return 0, fmt.Errorf("%w: minimum (%d) in %v must not be negative", ErrConfiguration, d.Min, d.Name)
		}
		if d.Max > g.Size {
			return 0, fmt.Errorf("%w: maximum (%d) in %v cannot be greater than size (%d)", ErrConfiguration, d.Max, d.Name, g.Size)
		}
		sizes[i] = g.Size
	}

	ways, err := branch(draws, sizes, 0, 0, handSize, 1.0)
	if err != nil {
		return 0, err
	}
	hands, err := Choose(deckSize, handSize)
	if err != nil {
		return 0, err
	}
	return ways / hands, nil
}

// branch counts the hands matching draws[depth:] given running cards
// already drawn with product ways.
func branch[N deck.Name](draws []Draw[N], sizes []int, depth, running, handSize int, product float64) (float64, error) {
	if running > handSize {
		return 0, nil
	}
	if running == handSize {
		for _, d := range draws[depth:] {
			if d.Min > 0 || d.Max < 0 {
				return 0, nil
			}
		}
		return product, nil
	}
	if depth == len(draws) {
		return 0, nil
	}

	d := draws[depth]
	total := 0.0
	for k := d.Min; k <= d.Max; k++ {
		ways, err := Choose(sizes[depth], k)
		if err != nil {
			return 0, err
		}
		sub, err := branch(draws, sizes, depth+1, running+k, handSize, product*ways)
		if err != nil {
			return 0, err
		}
		total += sub
	}
	return total, nil
}
