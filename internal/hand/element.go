// Package hand models hand shapes: how many cards of each group a drawn hand
// holds, independent of which physical cards were drawn.
package hand

import (
	"fmt"

	"github.com/lox/handodds/internal/deck"
)

// Element is one group's realized count inside a hand shape. Bound carries
// the originating group's upper bound and is informational only.
type Element[N deck.Name] struct {
	Name  N
	Count int
	Bound int
}

// String renders the element as name×count.
func (e Element[N]) String() string {
	return fmt.Sprintf("%v×%d", e.Name, e.Count)
}

// Merge unions elements with fill, keyed by name. An element already present
// always wins over a fill entry with the same name, and only the first
// element for a given name is kept.
func Merge[N deck.Name](elements, fill []Element[N]) []Element[N] {
	merged := make([]Element[N], 0, len(elements)+len(fill))
	seen := make(map[N]struct{}, len(elements)+len(fill))

	for _, list := range [][]Element[N]{elements, fill} {
		for _, e := range list {
			if _, ok := seen[e.Name]; ok {
				continue
			}
			seen[e.Name] = struct{}{}
			merged = append(merged, e)
		}
	}

	return merged
}

// zeroFill returns a zero-count element for every group.
func zeroFill[N deck.Name](groups []deck.Group[N]) []Element[N] {
	fill := make([]Element[N], len(groups))
	for i, g := range groups {
		fill[i] = Element[N]{Name: g.Name, Count: 0, Bound: g.Maximum}
	}
	return fill
}
