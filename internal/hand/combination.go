package hand

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/handodds/internal/deck"
)

// Combination is an immutable hand shape: one element per group, sorted by
// name. Two combinations holding the same elements are equal regardless of
// the order they were built in, and share the same Key.
type Combination[N deck.Name] struct {
	elements []Element[N]
	key      string
}

// NewCombination builds a combination. Elements sharing a name are merged,
// keeping the first.
func NewCombination[N deck.Name](elements ...Element[N]) Combination[N] {
	merged := Merge(elements, nil)
	slices.SortFunc(merged, func(a, b Element[N]) int {
		return cmp.Compare(a.Name, b.Name)
	})

	var sb strings.Builder
	for _, e := range merged {
		fmt.Fprintf(&sb, "%#v:%d/%d;", e.Name, e.Count, e.Bound)
	}

	return Combination[N]{elements: merged, key: sb.String()}
}

// Key is a stable, content-based identity usable as a map key.
func (c Combination[N]) Key() string {
	return c.key
}

// Equal reports whether both combinations hold the same elements.
func (c Combination[N]) Equal(other Combination[N]) bool {
	return c.key == other.key
}

// Elements returns a copy of the elements in name order.
func (c Combination[N]) Elements() []Element[N] {
	return slices.Clone(c.elements)
}

// Len returns the number of elements, zero-count placeholders included.
func (c Combination[N]) Len() int {
	return len(c.elements)
}

// Element looks up the element for a group.
func (c Combination[N]) Element(name N) (Element[N], bool) {
	i, ok := slices.BinarySearchFunc(c.elements, name, func(e Element[N], n N) int {
		return cmp.Compare(e.Name, n)
	})
	if !ok {
		return Element[N]{}, false
	}
	return c.elements[i], true
}

// Count returns how many cards of a group the hand holds.
func (c Combination[N]) Count(name N) int {
	e, _ := c.Element(name)
	return e.Count
}

// Size returns the number of cards in the hand.
func (c Combination[N]) Size() int {
	total := 0
	for _, e := range c.elements {
		total += e.Count
	}
	return total
}

// InHand returns the elements with a non-zero count.
func (c Combination[N]) InHand() []Element[N] {
	var in []Element[N]
	for _, e := range c.elements {
		if e.Count > 0 {
			in = append(in, e)
		}
	}
	return in
}

// String renders the cards in hand, e.g. "{Extender×1 Starter×2}".
func (c Combination[N]) String() string {
	parts := make([]string, 0, len(c.elements))
	for _, e := range c.InHand() {
		parts = append(parts, e.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Sort orders combinations by key so results can be compared
// deterministically.
func Sort[N deck.Name](combinations []Combination[N]) {
	slices.SortFunc(combinations, func(a, b Combination[N]) int {
		return strings.Compare(a.key, b.key)
	})
}
