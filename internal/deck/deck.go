package deck

import (
	"cmp"
	"fmt"
	"slices"
)

// Deck is an immutable collection of card groups with unique names. Groups
// with a size of zero are never kept. Every operation returns a new Deck.
type Deck[N Name] struct {
	groups []Group[N] // sorted by name
}

// New creates a deck from groups. Empty groups are dropped; duplicate names
// and invalid bounds are errors.
func New[N Name](groups ...Group[N]) (Deck[N], error) {
	kept := make([]Group[N], 0, len(groups))
	seen := make(map[N]struct{}, len(groups))

	for _, g := range groups {
		if _, ok := seen[g.Name]; ok {
			return Deck[N]{}, fmt.Errorf("%w: %v", ErrDuplicateGroup, g.Name)
		}
		seen[g.Name] = struct{}{}

		if err := g.Validate(); err != nil {
			return Deck[N]{}, err
		}
		if g.Size == 0 {
			continue
		}
		kept = append(kept, g)
	}

	slices.SortFunc(kept, func(a, b Group[N]) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return Deck[N]{groups: kept}, nil
}

// Groups returns a copy of the groups in name order.
func (d Deck[N]) Groups() []Group[N] {
	return slices.Clone(d.groups)
}

// Names returns the group names in order.
func (d Deck[N]) Names() []N {
	names := make([]N, len(d.groups))
	for i, g := range d.groups {
		names[i] = g.Name
	}
	return names
}

// Len returns the number of groups.
func (d Deck[N]) Len() int {
	return len(d.groups)
}

// Size returns the number of cards in the deck.
func (d Deck[N]) Size() int {
	total := 0
	for _, g := range d.groups {
		total += g.Size
	}
	return total
}

// IsEmpty returns true if the deck holds no cards.
func (d Deck[N]) IsEmpty() bool {
	return len(d.groups) == 0
}

// Group looks up a group by name.
func (d Deck[N]) Group(name N) (Group[N], bool) {
	i, ok := d.index(name)
	if !ok {
		return Group[N]{}, false
	}
	return d.groups[i], true
}

func (d Deck[N]) index(name N) (int, bool) {
	return slices.BinarySearchFunc(d.groups, name, func(g Group[N], n N) int {
		return cmp.Compare(g.Name, n)
	})
}

// CheckSize returns an error unless the deck holds exactly size cards.
func (d Deck[N]) CheckSize(size int) error {
	if got := d.Size(); got != size {
		return fmt.Errorf("deck holds %d cards, expected %d", got, size)
	}
	return nil
}

// Replace swaps in g for the group with the same name, or adds it.
func (d Deck[N]) Replace(g Group[N]) (Deck[N], error) {
	groups := slices.DeleteFunc(d.Groups(), func(old Group[N]) bool {
		return old.Name == g.Name
	})
	return New(append(groups, g)...)
}

// Change applies fn to the named group. Unknown names leave the deck as is.
func (d Deck[N]) Change(name N, fn func(Group[N]) Group[N]) (Deck[N], error) {
	g, ok := d.Group(name)
	if !ok {
		return d, nil
	}
	return d.Replace(fn(g))
}

// Without returns the deck minus the named group.
func (d Deck[N]) Without(name N) Deck[N] {
	groups := slices.DeleteFunc(d.Groups(), func(g Group[N]) bool {
		return g.Name == name
	})
	return Deck[N]{groups: groups}
}

// Draw removes count copies of the named group. Groups reduced to zero are
// dropped; the others, including a group drawn zero times, are rebuilt with
// resize. Drawing a group that is not in the deck is a no-op.
func (d Deck[N]) Draw(name N, count int, resize Resizer[N]) (Deck[N], error) {
	g, ok := d.Group(name)
	if !ok {
		return d, nil
	}

	remaining := g.Size - count
	switch {
	case count < 0:
		return Deck[N]{}, fmt.Errorf("%w: %v: cannot draw a negative count (%d)", ErrInvalidGroup, name, count)
	case remaining < 0:
		return Deck[N]{}, fmt.Errorf("%w: %v: cannot draw %d of %d cards", ErrInvalidGroup, name, count, g.Size)
	case remaining == 0:
		return d.Without(name), nil
	}

	if resize == nil {
		resize = Shrink[N]
	}
	return d.Replace(resize(g, remaining))
}

// WithFiller pads the deck to total cards with an unrestricted group named
// filler. A deck already holding total cards is returned unchanged.
func (d Deck[N]) WithFiller(filler N, total int) (Deck[N], error) {
	size := d.Size()
	if size > total {
		return Deck[N]{}, fmt.Errorf("card groups hold %d cards, more than the deck size of %d", size, total)
	}
	if _, ok := d.Group(filler); ok {
		return Deck[N]{}, fmt.Errorf("%w: filler %v", ErrDuplicateGroup, filler)
	}
	if size == total {
		return d, nil
	}
	return New(append(d.Groups(), Exactly(filler, total-size))...)
}
