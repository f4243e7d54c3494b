package analyzer

import (
	"fmt"
	"sync"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/hand"
	"github.com/lox/handodds/internal/statistics"
)

// Assessment is a judgement about one hand shape.
type Assessment[N deck.Name] interface {
	Included() bool
	Hand() hand.Combination[N]
}

// Labeled is a ready-made Assessment carrying a free-form label.
type Labeled[N deck.Name] struct {
	Combination hand.Combination[N]
	Label       string
	Include     bool
}

func (l Labeled[N]) Included() bool            { return l.Include }
func (l Labeled[N]) Hand() hand.Combination[N] { return l.Combination }

// Classifier assesses one hand shape of an analyzer.
type Classifier[N deck.Name, A Assessment[N]] func(a *Analyzer[N], c hand.Combination[N]) A

// Assessed is the result of classifying every hand shape of an analyzer.
type Assessed[N deck.Name, A Assessment[N]] struct {
	analyzer    *Analyzer[N]
	probability float64
	assessments []A
	probs       []float64
}

// Assess classifies every hand shape. Assessments are kept once per hand,
// first one wins.
func Assess[N deck.Name, A Assessment[N]](a *Analyzer[N], classify Classifier[N, A]) (*Assessed[N, A], error) {
	s := &Assessed[N, A]{analyzer: a}
	seen := make(map[string]struct{}, len(a.combinations))

	for _, c := range a.combinations {
		x := classify(a, c)
		key := x.Hand().Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		p, err := a.ProbabilityOfHand(x.Hand())
		if err != nil {
			return nil, fmt.Errorf("assessing %v: %w", x.Hand(), err)
		}

		s.assessments = append(s.assessments, x)
		s.probs = append(s.probs, p)
		if x.Included() {
			s.probability += p
		}
	}

	return s, nil
}

func (s *Assessed[N, A]) Analyzer() *Analyzer[N] { return s.analyzer }

// Probability returns the probability of drawing an included hand.
func (s *Assessed[N, A]) Probability() float64 { return s.probability }

// Assessments returns a copy of every assessment in hand key order.
func (s *Assessed[N, A]) Assessments() []A {
	out := make([]A, len(s.assessments))
	copy(out, s.assessments)
	return out
}

// ProbabilityOfAssessment returns the probability of the assessed hand.
func (s *Assessed[N, A]) ProbabilityOfAssessment(x A) (float64, error) {
	return s.analyzer.ProbabilityOfHand(x.Hand())
}

// ProbabilityOf returns the probability of the hands whose assessment
// matches pred.
func (s *Assessed[N, A]) ProbabilityOf(pred func(A) bool) float64 {
	total := 0.0
	for i, x := range s.assessments {
		if pred(x) {
			total += s.probs[i]
		}
	}
	return total
}

// ExpectedValue sums value × probability over every assessment, skipping
// values of zero or less.
func (s *Assessed[N, A]) ExpectedValue(value func(A) float64) float64 {
	total := 0.0
	for i, x := range s.assessments {
		if v := value(x); v > 0 {
			total += v * s.probs[i]
		}
	}
	return total
}

// Distribution collects value for every assessment weighted by the
// probability of its hand.
func (s *Assessed[N, A]) Distribution(value func(A) float64) *statistics.Distribution {
	d := &statistics.Distribution{}
	for i, x := range s.assessments {
		d.Add(value(x), s.probs[i])
	}
	return d
}

// StdDev returns the unweighted population standard deviation of value
// across assessments.
func (s *Assessed[N, A]) StdDev(value func(A) float64) float64 {
	return statistics.StdDev(s.assessments, value)
}

// AggregateAssessments hands every assessment to reduce.
func AggregateAssessments[N deck.Name, A Assessment[N], R any](s *Assessed[N, A], reduce func([]A) R) R {
	return reduce(s.Assessments())
}

// AssessmentCache assesses each analyzer at most once with a fixed
// classifier and hands out the shared result afterwards.
type AssessmentCache[N deck.Name, A Assessment[N]] struct {
	classify Classifier[N, A]

	mu      sync.Mutex
	entries map[*Analyzer[N]]*Assessed[N, A]
}

func NewAssessmentCache[N deck.Name, A Assessment[N]](classify Classifier[N, A]) *AssessmentCache[N, A] {
	return &AssessmentCache[N, A]{
		classify: classify,
		entries:  make(map[*Analyzer[N]]*Assessed[N, A]),
	}
}

// Get returns the assessment of a, computing it on first use. The lock is
// held across lookup, computation and store.
func (c *AssessmentCache[N, A]) Get(a *Analyzer[N]) (*Assessed[N, A], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.entries[a]; ok {
		return s, nil
	}

	s, err := Assess(a, c.classify)
	if err != nil {
		return nil, err
	}
	c.entries[a] = s
	return s, nil
}

// Len returns the number of analyzers assessed so far.
func (c *AssessmentCache[N, A]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
