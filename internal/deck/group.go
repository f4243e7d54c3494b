package deck

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrInvalidGroup is returned when a group's bounds are inconsistent.
	ErrInvalidGroup = errors.New("invalid card group")
	// ErrDuplicateGroup is returned when two groups share a name.
	ErrDuplicateGroup = errors.New("duplicate card group")
)

// Name is the constraint satisfied by card group names. Names are used as
// map keys and sorted to give hand shapes a canonical order.
type Name interface {
	cmp.Ordered
}

// Group is a named partition of the deck: Size interchangeable copies, of
// which between Minimum and Maximum may appear in a hand.
type Group[N Name] struct {
	Name    N
	Size    int
	Minimum int
	Maximum int
}

// NewGroup creates a group and checks 0 <= minimum <= maximum <= size.
func NewGroup[N Name](name N, size, minimum, maximum int) (Group[N], error) {
	g := Group[N]{Name: name, Size: size, Minimum: minimum, Maximum: maximum}
	if err := g.Validate(); err != nil {
		return Group[N]{}, err
	}
	return g, nil
}

// Exactly is a group with no draw restriction beyond its size.
func Exactly[N Name](name N, size int) Group[N] {
	return Group[N]{Name: name, Size: size, Minimum: 0, Maximum: size}
}

// Validate reports the first bound that is out of range.
func (g Group[N]) Validate() error {
	switch {
	case g.Size < 0:
		return fmt.Errorf("%w: %v: size (%d) must not be negative", ErrInvalidGroup, g.Name, g.Size)
	case g.Minimum < 0:
		return fmt.Errorf("%w: %v: minimum (%d) must not be negative", ErrInvalidGroup, g.Name, g.Minimum)
	case g.Maximum > g.Size:
		return fmt.Errorf("%w: %v: maximum (%d) cannot be greater than size (%d)", ErrInvalidGroup, g.Name, g.Maximum, g.Size)
	case g.Minimum > g.Maximum:
		return fmt.Errorf("%w: %v: minimum (%d) cannot be greater than maximum (%d)", ErrInvalidGroup, g.Name, g.Minimum, g.Maximum)
	}
	return nil
}

// String renders the group as name[min..max]/size.
func (g Group[N]) String() string {
	return fmt.Sprintf("%v[%d..%d]/%d", g.Name, g.Minimum, g.Maximum, g.Size)
}

// Resizer builds the replacement for a group whose size changed.
type Resizer[N Name] func(g Group[N], size int) Group[N]

// Shrink is the default Resizer. It keeps the bounds but clamps them to the
// new size.
func Shrink[N Name](g Group[N], size int) Group[N] {
	g.Size = size
	g.Maximum = min(g.Maximum, size)
	g.Minimum = min(g.Minimum, g.Maximum)
	return g
}

// Unbounded is a Resizer that drops the bounds: the resized group may
// appear anywhere from zero to size times.
func Unbounded[N Name](g Group[N], size int) Group[N] {
	return Exactly(g.Name, size)
}
