// Package analyzer ties a deck, a hand size and every possible hand shape
// together and answers probability questions about the opening hand.
package analyzer

import (
	"errors"
	"fmt"
	"maps"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/hand"
)

// ErrInvalidDeck is returned when an analyzer cannot be built from the
// groups it was given.
var ErrInvalidDeck = errors.New("invalid deck")

// MaxDeckSize keeps every factorial the evaluator needs well inside its table.
const MaxDeckSize = 60

// Analyzer holds every hand shape for one deck and hand size together with
// the probability of each. It is immutable and safe for concurrent use;
// operations that change the deck return a new Analyzer.
type Analyzer[N deck.Name] struct {
	name         string
	handSize     int
	deck         deck.Deck[N]
	groups       map[N]deck.Group[N]
	combinations []hand.Combination[N]
	probs        []float64
	index        map[string]int
}

// New validates the groups and enumerates every hand shape once.
func New[N deck.Name](name string, handSize int, groups ...deck.Group[N]) (*Analyzer[N], error) {
	d, err := deck.New(groups...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeck, name, err)
	}
	return FromDeck(name, handSize, d)
}

// FromDeck builds an analyzer over an existing deck.
func FromDeck[N deck.Name](name string, handSize int, d deck.Deck[N]) (*Analyzer[N], error) {
	size := d.Size()
	if size < 1 || size > MaxDeckSize {
		return nil, fmt.Errorf("%w: %s: deck size (%d) must be between 1 and %d", ErrInvalidDeck, name, size, MaxDeckSize)
	}

	groups := make(map[N]deck.Group[N], d.Len())
	for _, g := range d.Groups() {
		groups[g.Name] = g
	}

	if err := evaluator.Validate(groups, size, handSize); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeck, name, err)
	}

	combinations := hand.Enumerate(handSize, d.Groups())
	hand.Sort(combinations)

	probs, err := evaluator.Each(groups, combinations, size, handSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeck, name, err)
	}

	index := make(map[string]int, len(combinations))
	for i, c := range combinations {
		index[c.Key()] = i
	}

	return &Analyzer[N]{
		name:         name,
		handSize:     handSize,
		deck:         d,
		groups:       groups,
		combinations: combinations,
		probs:        probs,
		index:        index,
	}, nil
}

func (a *Analyzer[N]) Name() string { return a.name }

func (a *Analyzer[N]) DeckSize() int { return a.deck.Size() }

func (a *Analyzer[N]) HandSize() int { return a.handSize }

func (a *Analyzer[N]) Deck() deck.Deck[N] { return a.deck }

// CardGroups returns a copy of the groups keyed by name.
func (a *Analyzer[N]) CardGroups() map[N]deck.Group[N] {
	return maps.Clone(a.groups)
}

// Combinations returns every hand shape, sorted by key.
func (a *Analyzer[N]) Combinations() []hand.Combination[N] {
	out := make([]hand.Combination[N], len(a.combinations))
	copy(out, a.combinations)
	return out
}

func (a *Analyzer[N]) String() string {
	return fmt.Sprintf("%s (deck %d, hand %d, %d shapes)", a.name, a.DeckSize(), a.handSize, len(a.combinations))
}
