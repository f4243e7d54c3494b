package hand

import (
	"slices"

	"github.com/lox/handodds/internal/deck"
)

// stack is the working hand during enumeration, tracking its running size.
type stack[N deck.Name] struct {
	elements []Element[N]
	size     int
}

func (s *stack[N]) push(e Element[N]) {
	s.size += e.Count
	s.elements = append(s.elements, e)
}

func (s *stack[N]) pop() {
	last := s.elements[len(s.elements)-1]
	s.size -= last.Count
	s.elements = s.elements[:len(s.elements)-1]
}

// Enumerate returns every distinct hand shape of exactly handSize cards that
// respects each group's bounds. Every combination holds one element per
// group, with zero-count placeholders for groups absent from the hand.
//
// Groups are not validated: inconsistent bounds, a negative minimum or an
// unreachable hand size yield an empty result. The order of the result is
// unspecified.
func Enumerate[N deck.Name](handSize int, groups []deck.Group[N]) []Combination[N] {
	pending := uniqueGroups(groups)
	for _, g := range pending {
		if g.Minimum < 0 {
			return []Combination[N]{}
		}
	}
	hand := &stack[N]{elements: make([]Element[N], 0, len(pending))}

	// floor[i] is the smallest number of cards groups i.. can contribute.
	floor := make([]int, len(pending)+1)
	for i := len(pending) - 1; i >= 0; i-- {
		floor[i] = floor[i+1] + pending[i].Minimum
	}
	var leaves [][]Element[N]

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(pending) {
			if hand.size == handSize {
				leaves = append(leaves, slices.Clone(hand.elements))
			}
			return
		}

		g := pending[depth]
		for count := g.Minimum; count <= g.Maximum; count++ {
			// Counts only grow from here, so nothing below can sum to handSize.
			if hand.size+count+floor[depth+1] > handSize {
				break
			}
			hand.push(Element[N]{Name: g.Name, Count: count, Bound: g.Maximum})
			walk(depth + 1)
			hand.pop()
		}
	}
	walk(0)

	fill := zeroFill(pending)
	seen := make(map[string]struct{}, len(leaves))
	combinations := make([]Combination[N], 0, len(leaves))

	for _, leaf := range leaves {
		c := NewCombination(Merge(leaf, fill)...)
		if _, ok := seen[c.Key()]; ok {
			continue
		}
		seen[c.Key()] = struct{}{}
		combinations = append(combinations, c)
	}

	return combinations
}

// uniqueGroups drops repeated names, keeping the first occurrence.
func uniqueGroups[N deck.Name](groups []deck.Group[N]) []deck.Group[N] {
	seen := make(map[N]struct{}, len(groups))
	unique := make([]deck.Group[N], 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		seen[g.Name] = struct{}{}
		unique = append(unique, g)
	}
	return unique
}
