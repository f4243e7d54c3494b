package analyzer

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/workpool"
)

// Spec describes an analyzer to build.
type Spec[N deck.Name] struct {
	Name     string
	HandSize int
	Groups   []deck.Group[N]
}

type buildConfig struct {
	workers int
	logger  *log.Logger
}

// Option configures BuildAll.
type Option func(*buildConfig)

// WithWorkers bounds the number of analyzers built at once. Zero or less
// uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(c *buildConfig) { c.workers = n }
}

// WithLogger sets the logger for build progress.
func WithLogger(logger *log.Logger) Option {
	return func(c *buildConfig) { c.logger = logger }
}

// BuildAll builds one analyzer per spec in parallel. Results are in spec
// order. The first failure stops builds that have not started and is
// returned.
func BuildAll[N deck.Name](ctx context.Context, specs []Spec[N], opts ...Option) ([]*Analyzer[N], error) {
	cfg := buildConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger.With("component", "analyzer")
	workers := workpool.Workers(cfg.workers)
	logger.Debug("Building analyzers", "count", len(specs), "workers", workers)

	analyzers, err := workpool.Run(ctx, workers, len(specs), func(_ context.Context, seq int) (*Analyzer[N], error) {
		spec := specs[seq]
		a, err := New(spec.Name, spec.HandSize, spec.Groups...)
		if err != nil {
			logger.Warn("Analyzer build failed", "name", spec.Name, "error", err)
			return nil, err
		}
		logger.Debug("Analyzer built", "name", a.Name(), "deck", a.DeckSize(), "hand", a.HandSize(), "shapes", len(a.combinations))
		return a, nil
	})
	if err != nil {
		return nil, err
	}

	return analyzers, nil
}
