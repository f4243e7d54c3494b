package analyzer

import (
	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/hand"
)

// Entry is one hand shape, its probability and a value derived from it.
type Entry[N deck.Name, T any] struct {
	Hand        hand.Combination[N]
	Probability float64
	Value       T
}

// Probability returns the probability of the whole hand space. Groups with
// bounds narrower than their size make this less than one.
func (a *Analyzer[N]) Probability() float64 {
	total := 0.0
	for _, p := range a.probs {
		total += p
	}
	return total
}

// ProbabilityOf returns the probability of drawing a hand matching pred.
func (a *Analyzer[N]) ProbabilityOf(pred hand.Predicate[N]) float64 {
	total := 0.0
	for i, c := range a.combinations {
		if pred(c) {
			total += a.probs[i]
		}
	}
	return total
}

// ProbabilityOfHand returns the probability of exactly the shape c. Shapes
// the analyzer did not enumerate are evaluated against its groups.
func (a *Analyzer[N]) ProbabilityOfHand(c hand.Combination[N]) (float64, error) {
	if i, ok := a.index[c.Key()]; ok {
		return a.probs[i], nil
	}
	return evaluator.Probability(a.groups, c, a.DeckSize(), a.handSize)
}

// ProbabilityOfDraws returns the probability that every draw's count lands
// in its range.
func (a *Analyzer[N]) ProbabilityOfDraws(draws ...evaluator.Draw[N]) (float64, error) {
	return evaluator.ProbabilityOfDraws(a.groups, draws, a.DeckSize(), a.handSize)
}

// ExpectedValue sums value × probability over every hand. Hands valued at
// zero or less contribute nothing.
func (a *Analyzer[N]) ExpectedValue(value func(hand.Combination[N]) float64) float64 {
	total := 0.0
	for i, c := range a.combinations {
		if v := value(c); v > 0 {
			total += v * a.probs[i]
		}
	}
	return total
}

// CountHands returns how many hand shapes match pred.
func (a *Analyzer[N]) CountHands(pred hand.Predicate[N]) int {
	n := 0
	for _, c := range a.combinations {
		if pred(c) {
			n++
		}
	}
	return n
}

// CountUniqueNames returns, for each k in 0..HandSize, how many hand shapes
// hold exactly k distinct groups.
func (a *Analyzer[N]) CountUniqueNames() []int {
	counts := make([]int, a.handSize+1)
	for _, c := range a.combinations {
		counts[c.UniqueNames()]++
	}
	return counts
}

// Aggregate evaluates value for every hand shape and reduces the entries.
func Aggregate[N deck.Name, T, R any](a *Analyzer[N], value func(hand.Combination[N]) T, reduce func([]Entry[N, T]) R) R {
	entries := make([]Entry[N, T], len(a.combinations))
	for i, c := range a.combinations {
		entries[i] = Entry[N, T]{Hand: c, Probability: a.probs[i], Value: value(c)}
	}
	return reduce(entries)
}
