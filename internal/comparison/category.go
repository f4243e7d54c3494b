package comparison

import (
	"fmt"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
)

// Category is one row of a report: a value computed for every analyzer.
type Category[N deck.Name] interface {
	Name() string
	Evaluate(analyzers []*analyzer.Analyzer[N]) ([]string, error)
}

type category[N deck.Name, T any] struct {
	name   string
	format Formatter[T]
	value  func(*analyzer.Analyzer[N]) (T, error)
}

// NewCategory builds a category computing value for each analyzer and
// rendering it with format.
func NewCategory[N deck.Name, T any](name string, format Formatter[T], value func(*analyzer.Analyzer[N]) (T, error)) Category[N] {
	return &category[N, T]{name: name, format: format, value: value}
}

// ProbabilityCategory is the probability of drawing a hand matching pred.
func ProbabilityCategory[N deck.Name](name string, pred hand.Predicate[N]) Category[N] {
	return NewCategory[N, float64](name, Probability, func(a *analyzer.Analyzer[N]) (float64, error) {
		return a.ProbabilityOf(pred), nil
	})
}

// ExpectedCategory is the expected value of a per-hand quantity.
func ExpectedCategory[N deck.Name](name string, value func(hand.Combination[N]) float64) Category[N] {
	return NewCategory[N, float64](name, Numerical, func(a *analyzer.Analyzer[N]) (float64, error) {
		return a.ExpectedValue(value), nil
	})
}

// NewAssessmentCategory computes value from each analyzer's assessment,
// taken from cache so that categories sharing a cache classify each
// analyzer once.
func NewAssessmentCategory[N deck.Name, A analyzer.Assessment[N], T any](name string, format Formatter[T], cache *analyzer.AssessmentCache[N, A], value func(*analyzer.Assessed[N, A]) T) Category[N] {
	return NewCategory[N, T](name, format, func(a *analyzer.Analyzer[N]) (T, error) {
		s, err := cache.Get(a)
		if err != nil {
			var zero T
			return zero, err
		}
		return value(s), nil
	})
}

func (c *category[N, T]) Name() string {
	return c.name
}

func (c *category[N, T]) Evaluate(analyzers []*analyzer.Analyzer[N]) ([]string, error) {
	cells := make([]string, len(analyzers))
	for i, a := range analyzers {
		v, err := c.value(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", c.name, a.Name(), err)
		}
		cells[i] = c.format(v)
	}
	return cells, nil
}
