package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/hand"
)

const tolerance = 1e-9

func choose(n, k int) float64 {
	return float64(combin.Binomial(n, k))
}

func keyCardAnalyzer(t *testing.T) *Analyzer[string] {
	t.Helper()
	a, err := New("Key Card", 5, deck.Exactly("Key Card", 3), deck.Exactly("Other", 37))
	require.NoError(t, err)
	return a
}

func boundedAnalyzer(t *testing.T) *Analyzer[string] {
	t.Helper()
	a, err := New("Bounded", 5,
		deck.Group[string]{Name: "Starter", Size: 3, Minimum: 1, Maximum: 3},
		deck.Group[string]{Name: "Extender", Size: 6, Minimum: 0, Maximum: 2},
		deck.Exactly("Other", 31),
	)
	require.NoError(t, err)
	return a
}

func keyCount(c hand.Combination[string]) float64 {
	return float64(c.Count("Key Card"))
}

func TestNew(t *testing.T) {
	a := boundedAnalyzer(t)

	assert.Equal(t, "Bounded", a.Name())
	assert.Equal(t, 40, a.DeckSize())
	assert.Equal(t, 5, a.HandSize())
	assert.Len(t, a.Combinations(), 9)
	assert.Equal(t, []string{"Extender", "Other", "Starter"}, a.Deck().Names())

	groups := a.CardGroups()
	require.Len(t, groups, 3)
	delete(groups, "Starter")
	assert.Len(t, a.CardGroups(), 3, "returned map is a copy")

	for _, c := range a.Combinations() {
		assert.Equal(t, 5, c.Size())
		assert.Equal(t, 3, c.Len())
	}
}

func TestNewRejectsInvalidDecks(t *testing.T) {
	tests := []struct {
		name     string
		handSize int
		groups   []deck.Group[string]
		wantErr  error
		wantText string
	}{
		{
			name:     "negative minimum",
			handSize: 5,
			groups: []deck.Group[string]{
				{Name: "A", Size: 3, Minimum: -1, Maximum: 3},
				deck.Exactly("B", 37),
			},
			wantErr:  deck.ErrInvalidGroup,
			wantText: "-1",
		},
		{
			name:     "hand larger than deck",
			handSize: 41,
			groups:   []deck.Group[string]{deck.Exactly("A", 3), deck.Exactly("B", 37)},
			wantErr:  evaluator.ErrConfiguration,
			wantText: "(41)",
		},
		{
			name:     "negative hand",
			handSize: -1,
			groups:   []deck.Group[string]{deck.Exactly("A", 40)},
			wantErr:  evaluator.ErrConfiguration,
			wantText: "(-1)",
		},
		{
			name:     "deck too large",
			handSize: 5,
			groups:   []deck.Group[string]{deck.Exactly("A", 61)},
			wantErr:  ErrInvalidDeck,
			wantText: "(61)",
		},
		{
			name:     "empty deck",
			handSize: 0,
			groups:   []deck.Group[string]{deck.Exactly("A", 0)},
			wantErr:  ErrInvalidDeck,
			wantText: "(0)",
		},
		{
			name:     "duplicate group",
			handSize: 5,
			groups:   []deck.Group[string]{deck.Exactly("A", 3), deck.Exactly("A", 37)},
			wantErr:  deck.ErrDuplicateGroup,
			wantText: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.name, tt.handSize, tt.groups...)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrInvalidDeck)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantText)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestWholeSpace(t *testing.T) {
	a := keyCardAnalyzer(t)
	assert.InDelta(t, 1.0, a.Probability(), tolerance)

	// the Starter minimum rules out hands without one
	b := boundedAnalyzer(t)
	assert.Less(t, b.Probability(), 1.0)
	assert.Positive(t, b.Probability())
}

func TestProbabilityOf(t *testing.T) {
	a := keyCardAnalyzer(t)

	want := 1 - choose(37, 5)/choose(40, 5)
	assert.InDelta(t, want, a.ProbabilityOf(hand.Any("Key Card")), tolerance)
	assert.InDelta(t, 1-want, a.ProbabilityOf(hand.None("Key Card")), tolerance)

	got, err := a.ProbabilityOfDraws(
		evaluator.Draw[string]{Name: "Key Card", Min: 1, Max: 3},
		evaluator.Draw[string]{Name: "Other", Min: 0, Max: 37},
	)
	require.NoError(t, err)
	assert.InDelta(t, want, got, tolerance)
}

func TestProbabilityOfHand(t *testing.T) {
	a := keyCardAnalyzer(t)

	for _, c := range a.Combinations() {
		got, err := a.ProbabilityOfHand(c)
		require.NoError(t, err)

		want := choose(3, c.Count("Key Card")) * choose(37, c.Count("Other")) / choose(40, 5)
		assert.InDelta(t, want, got, tolerance, c.String())
	}

	// shapes outside the enumerated set are still evaluated
	b := boundedAnalyzer(t)
	outside := hand.NewCombination(
		hand.Element[string]{Name: "Starter", Count: 0},
		hand.Element[string]{Name: "Extender", Count: 0},
		hand.Element[string]{Name: "Other", Count: 5},
	)
	got, err := b.ProbabilityOfHand(outside)
	require.NoError(t, err)
	assert.InDelta(t, choose(31, 5)/choose(40, 5), got, tolerance)

	_, err = a.ProbabilityOfHand(hand.NewCombination(hand.Element[string]{Name: "Ghost", Count: 5}))
	require.ErrorIs(t, err, evaluator.ErrInconsistent)
}

func TestExpectedValue(t *testing.T) {
	a := keyCardAnalyzer(t)

	// hypergeometric mean: hand × copies / deck
	assert.InDelta(t, 5.0*3.0/40.0, a.ExpectedValue(keyCount), tolerance)
	assert.Zero(t, a.ExpectedValue(func(hand.Combination[string]) float64 { return -1 }))
}

func TestAggregate(t *testing.T) {
	a := keyCardAnalyzer(t)

	mean := Aggregate(a, keyCount, func(entries []Entry[string, float64]) float64 {
		total := 0.0
		for _, e := range entries {
			total += e.Probability * e.Value
		}
		return total
	})
	assert.InDelta(t, 0.375, mean, tolerance)

	n := Aggregate(a, func(c hand.Combination[string]) string { return c.String() }, func(entries []Entry[string, string]) int {
		return len(entries)
	})
	assert.Equal(t, 4, n)
}

func TestCounts(t *testing.T) {
	a := keyCardAnalyzer(t)

	assert.Equal(t, 3, a.CountHands(hand.Any("Key Card")))
	assert.Equal(t, 4, a.CountHands(hand.And[string]()))
	assert.Equal(t, []int{0, 1, 3, 0, 0, 0}, a.CountUniqueNames())
}

func TestString(t *testing.T) {
	a := keyCardAnalyzer(t)
	assert.Equal(t, "Key Card (deck 40, hand 5, 4 shapes)", a.String())
}
