// accuracy.go
// Package translationaccuracy evaluates how closely a hypothesis text
// (typically a machine translation) matches a reference text. Each
// compared pair yields the standard quality metrics (word error rate,
// character error rate, a character-level accuracy percentage, and a
// BLEU-style n-gram precision score) together with a classified list of
// character discrepancies derived from the optimal edit-distance
// alignment. Batches of results can be folded into an aggregate summary.
//
// This version uses the functional options pattern to allow configuration
// of normalization, logging, batch parallelism, and the edit-distance
// strategy.
package translationaccuracy

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_translation_accuracy/internal/adapters/editdist"
	"github.com/baditaflorin/go_translation_accuracy/internal/adapters/logger"
	"github.com/baditaflorin/go_translation_accuracy/internal/adapters/normalizer"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/compare"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
	"github.com/baditaflorin/go_translation_accuracy/internal/warmup"
)

// Comparator evaluates reference/hypothesis pairs. Safe for concurrent use.
type Comparator struct {
	core       *compare.Comparator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring the Comparator.
type Option func(*comparatorConfig)

type comparatorConfig struct {
	Normalize    bool
	Parallelism  int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Strategy     ports.DistanceStrategy
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithNormalization toggles whitespace canonicalization of both texts
// before comparison. Enabled by default; disabling compares raw texts.
func WithNormalization(enable bool) Option {
	return func(cfg *comparatorConfig) {
		cfg.Normalize = enable
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *comparatorConfig) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer sets the pooled, table-driven whitespace
// normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *comparatorConfig) {
		cfg.Normalizer = normalizer.NewOptimized()
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *comparatorConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithLibraryDistance selects the library-backed edit-distance strategy
// for the metric calculators. Error classification always runs on the
// built-in engine, which is the one the test suite certifies.
func WithLibraryDistance() Option {
	return func(cfg *comparatorConfig) {
		cfg.Strategy = editdist.NewLibrary()
	}
}

// WithDistanceStrategy sets a custom distance strategy.
func WithDistanceStrategy(s ports.DistanceStrategy) Option {
	return func(cfg *comparatorConfig) {
		cfg.Strategy = s
	}
}

// WithParallelism bounds the number of pairs CompareBatch evaluates
// concurrently. Values below 2 keep batches sequential.
func WithParallelism(n int) Option {
	return func(cfg *comparatorConfig) {
		cfg.Parallelism = n
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *comparatorConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.Config) Option {
	return func(cfg *comparatorConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Comparator with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Comparator, error) {
	config := &comparatorConfig{
		Normalize:    true,
		Parallelism:  compare.DefaultConfig().Parallelism,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		if config.Normalize {
			config.Normalizer = normalizer.NewWhitespace()
		} else {
			config.Normalizer = normalizer.NewPassthrough()
		}
	}

	if config.Strategy == nil {
		config.Strategy = editdist.NewBuiltin()
	}

	core, err := compare.NewComparator(
		compare.Config{Parallelism: config.Parallelism},
		config.Logger,
		config.Normalizer,
		config.Strategy,
	)
	if err != nil {
		return nil, err
	}

	c := &Comparator{
		core:       core,
		logger:     config.Logger,
		normalizer: config.Normalizer,
	}

	if config.WarmUp {
		c.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return c, nil
}

// Compare evaluates one reference/hypothesis pair.
func (c *Comparator) Compare(ctx context.Context, reference, hypothesis string) domain.ComparisonResult {
	return c.core.Compare(ctx, reference, hypothesis, nil)
}

// CompareWithInfo evaluates one pair and attaches the given source info
// (file name, slide number, ...) to the result as an opaque pass-through.
func (c *Comparator) CompareWithInfo(ctx context.Context, reference, hypothesis string, info domain.SourceInfo) domain.ComparisonResult {
	return c.core.Compare(ctx, reference, hypothesis, info)
}

// CompareBatch evaluates each pair independently and returns results in
// input order.
func (c *Comparator) CompareBatch(ctx context.Context, pairs []domain.TextPair) []domain.ComparisonResult {
	return c.core.CompareBatch(ctx, pairs)
}

// ComparePairs evaluates parallel collections of (reference, hypothesis)
// pairs and optional source infos. A nil info collection attaches no
// source info; a non-nil one must match the pair count exactly or an error
// is returned.
func (c *Comparator) ComparePairs(ctx context.Context, pairs [][2]string, infos []domain.SourceInfo) ([]domain.ComparisonResult, error) {
	zipped, err := compare.Zip(pairs, infos)
	if err != nil {
		return nil, err
	}
	return c.core.CompareBatch(ctx, zipped), nil
}

// Summarize aggregates comparison results into a Summary.
func (c *Comparator) Summarize(results []domain.ComparisonResult) domain.Summary {
	return compare.Summarize(results)
}

// WarmUp exercises the comparator and its normalizer with generated
// sample pairs to optimize steady-state performance.
func (c *Comparator) WarmUp(ctx context.Context, config warmup.Config) {
	if c.warmed {
		c.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(c.logger, config)
	warmupMgr.RegisterComparator(c.core)
	warmupMgr.RegisterNormalizer(c.normalizer)

	warmupMgr.WarmUp(ctx)
	c.warmed = true
}
