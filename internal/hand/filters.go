package hand

import (
	"slices"

	"github.com/lox/handodds/internal/deck"
)

// Predicate selects hand shapes.
type Predicate[N deck.Name] func(Combination[N]) bool

// HasCard reports whether the hand holds at least one card of the group.
func (c Combination[N]) HasCard(name N) bool {
	return c.Count(name) > 0
}

// HasAny reports whether the hand holds at least one of the groups.
func (c Combination[N]) HasAny(names ...N) bool {
	for _, name := range names {
		if c.HasCard(name) {
			return true
		}
	}
	return false
}

// HasAll reports whether the hand holds every one of the groups.
func (c Combination[N]) HasAll(names ...N) bool {
	for _, name := range names {
		if !c.HasCard(name) {
			return false
		}
	}
	return true
}

// HasNone reports whether the hand holds none of the groups.
func (c Combination[N]) HasNone(names ...N) bool {
	return !c.HasAny(names...)
}

// OnlySingles reports whether no group appears more than once.
func (c Combination[N]) OnlySingles() bool {
	for _, e := range c.elements {
		if e.Count > 1 {
			return false
		}
	}
	return true
}

// HasDuplicates reports whether some group appears more than once.
func (c Combination[N]) HasDuplicates() bool {
	return !c.OnlySingles()
}

// OnlyDuplicates reports whether every group in hand appears more than once.
func (c Combination[N]) OnlyDuplicates() bool {
	for _, e := range c.elements {
		if e.Count == 1 {
			return false
		}
	}
	return true
}

// UniqueNames counts the distinct groups in hand.
func (c Combination[N]) UniqueNames() int {
	return len(c.InHand())
}

// CountNamesIn counts the listed groups present in hand, ignoring how many
// copies of each were drawn.
func (c Combination[N]) CountNamesIn(names ...N) int {
	n := 0
	for _, e := range c.InHand() {
		if slices.Contains(names, e.Name) {
			n++
		}
	}
	return n
}

// CountCopiesIn sums the cards in hand drawn from the listed groups.
func (c Combination[N]) CountCopiesIn(names ...N) int {
	n := 0
	for _, e := range c.InHand() {
		if slices.Contains(names, e.Name) {
			n += e.Count
		}
	}
	return n
}

// Any builds a predicate matching hands with at least one of the groups.
func Any[N deck.Name](names ...N) Predicate[N] {
	return func(c Combination[N]) bool { return c.HasAny(names...) }
}

// All builds a predicate matching hands with every one of the groups.
func All[N deck.Name](names ...N) Predicate[N] {
	return func(c Combination[N]) bool { return c.HasAll(names...) }
}

// None builds a predicate matching hands with none of the groups.
func None[N deck.Name](names ...N) Predicate[N] {
	return func(c Combination[N]) bool { return c.HasNone(names...) }
}

// And combines predicates; an empty list matches everything.
func And[N deck.Name](predicates ...Predicate[N]) Predicate[N] {
	return func(c Combination[N]) bool {
		for _, p := range predicates {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Not negates a predicate.
func Not[N deck.Name](p Predicate[N]) Predicate[N] {
	return func(c Combination[N]) bool { return !p(c) }
}
