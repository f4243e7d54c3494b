// Package comparison evaluates a set of categories across several analyzers
// and renders the results side by side.
package comparison

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handodds/internal/analyzer"
	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/workpool"
)

type config struct {
	clock   quartz.Clock
	logger  *log.Logger
	workers int
}

// Option configures a Report.
type Option func(*config)

// WithClock sets the clock used to time a run.
func WithClock(clock quartz.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithLogger sets the logger for run progress.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithWorkers bounds the categories evaluated at once by RunParallel.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Report compares analyzers category by category.
type Report[N deck.Name] struct {
	analyzers  []*analyzer.Analyzer[N]
	categories []Category[N]
	config
}

// Summary describes one analyzer in a result.
type Summary struct {
	Name     string
	DeckSize int
	HandSize int
	Shapes   int
}

// Row is one category's rendered value for every analyzer.
type Row struct {
	Category string
	Cells    []string
}

// Result is a completed report.
type Result struct {
	Analyzers []Summary
	Rows      []Row
	Elapsed   time.Duration
}

// New creates a report over analyzers. Columns follow the order given.
func New[N deck.Name](analyzers []*analyzer.Analyzer[N], opts ...Option) *Report[N] {
	cfg := config{clock: quartz.NewReal(), logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = cfg.logger.With("component", "comparison")

	return &Report[N]{analyzers: analyzers, config: cfg}
}

// Add appends categories; rows follow the order they were added.
func (r *Report[N]) Add(categories ...Category[N]) *Report[N] {
	r.categories = append(r.categories, categories...)
	return r
}

// Categories returns the categories in row order.
func (r *Report[N]) Categories() []Category[N] {
	out := make([]Category[N], len(r.categories))
	copy(out, r.categories)
	return out
}

// Run evaluates every category in turn.
func (r *Report[N]) Run() (*Result, error) {
	start := r.clock.Now()

	rows := make([]Row, 0, len(r.categories))
	for _, c := range r.categories {
		row, err := r.evaluate(c)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return r.finish(rows, start), nil
}

// RunParallel evaluates categories concurrently. Rows come back in the
// order the categories were added.
func (r *Report[N]) RunParallel(ctx context.Context) (*Result, error) {
	start := r.clock.Now()

	rows, err := workpool.Run(ctx, r.workers, len(r.categories), func(_ context.Context, seq int) (Row, error) {
		return r.evaluate(r.categories[seq])
	})
	if err != nil {
		return nil, err
	}

	return r.finish(rows, start), nil
}

func (r *Report[N]) evaluate(c Category[N]) (Row, error) {
	cells, err := c.Evaluate(r.analyzers)
	if err != nil {
		r.logger.Warn("Category failed", "category", c.Name(), "error", err)
		return Row{}, err
	}
	r.logger.Debug("Category evaluated", "category", c.Name())
	return Row{Category: c.Name(), Cells: cells}, nil
}

func (r *Report[N]) finish(rows []Row, start time.Time) *Result {
	res := &Result{Rows: rows, Elapsed: r.clock.Since(start)}
	for _, a := range r.analyzers {
		res.Analyzers = append(res.Analyzers, Summary{
			Name:     a.Name(),
			DeckSize: a.DeckSize(),
			HandSize: a.HandSize(),
			Shapes:   len(a.Combinations()),
		})
	}

	r.logger.Info("Report complete", "analyzers", len(r.analyzers), "categories", len(rows), "elapsed", res.Elapsed)
	return res
}
