// Package compare orchestrates one reference/hypothesis evaluation:
// normalization, metric calculation, and error classification, plus batch
// application and aggregation.
package compare

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_translation_accuracy/internal/core/classify"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/metrics"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Config holds configuration for the comparator.
type Config struct {
	// Parallelism bounds the number of pairs compared concurrently by
	// CompareBatch. Values below 2 keep the batch sequential.
	Parallelism int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Parallelism: 1}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Parallelism < 0 {
		return errors.New("parallelism must not be negative")
	}
	return nil
}

// Comparator evaluates hypothesis texts against reference texts. It holds
// no mutable state across comparisons; a single instance is safe for
// concurrent use.
type Comparator struct {
	config     Config
	logger     ports.Logger
	normalizer ports.Normalizer
	metrics    *metrics.Calculator
}

// NewComparator creates a new comparator. The normalizer is applied
// identically to both texts of every pair; pass a pass-through normalizer
// to compare raw texts.
func NewComparator(config Config, logger ports.Logger, normalizer ports.Normalizer, strategy ports.DistanceStrategy) (*Comparator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Comparator{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		metrics:    metrics.NewCalculator(strategy),
	}, nil
}

// Compare evaluates one pair and returns the packaged result. The result
// carries the original texts; all metrics and error details are computed
// on the normalized forms. Total over arbitrary input: empty strings and
// any Unicode content produce defined values, never a failure.
func (c *Comparator) Compare(ctx context.Context, reference, hypothesis string, info domain.SourceInfo) domain.ComparisonResult {
	_ = ctx // comparisons never suspend; ctx bounds batch scheduling only

	refNorm := c.normalizer.Normalize(reference)
	hypNorm := c.normalizer.Normalize(hypothesis)

	c.logger.Debug("Normalized texts",
		"reference", refNorm,
		"hypothesis", hypNorm,
	)

	cer := c.metrics.CER(refNorm, hypNorm)

	result := domain.ComparisonResult{
		Reference:  reference,
		Hypothesis: hypothesis,
		Accuracy:   metrics.AccuracyFromCER(refNorm, hypNorm, cer),
		WER:        c.metrics.WER(refNorm, hypNorm),
		CER:        cer,
		BLEU:       metrics.BLEU(refNorm, hypNorm),
		Errors:     classify.Details(refNorm, hypNorm),
		SourceInfo: info,
	}

	c.logger.Debug("Computed comparison",
		"accuracy", result.Accuracy,
		"wer", result.WER,
		"cer", result.CER,
		"bleu", result.BLEU,
		"errors", len(result.Errors),
	)

	return result
}

// CompareBatch applies Compare to each pair independently and returns the
// results in input order. With Parallelism above 1 the pairs are compared
// on a bounded worker group; results are still written to their input
// positions so source-info correlation and error listing stay
// reproducible.
func (c *Comparator) CompareBatch(ctx context.Context, pairs []domain.TextPair) []domain.ComparisonResult {
	results := make([]domain.ComparisonResult, len(pairs))

	if c.config.Parallelism > 1 && len(pairs) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.config.Parallelism)
		for i, pair := range pairs {
			g.Go(func() error {
				results[i] = c.Compare(gctx, pair.Reference, pair.Hypothesis, pair.SourceInfo)
				return nil
			})
		}
		// Workers never fail; Wait only synchronizes.
		_ = g.Wait()
		return results
	}

	for i, pair := range pairs {
		results[i] = c.Compare(ctx, pair.Reference, pair.Hypothesis, pair.SourceInfo)
	}
	return results
}

// Zip combines parallel reference/hypothesis pairs and source infos into
// TextPairs. A nil info collection attaches no source info; a non-nil one
// must match the pair count exactly; mismatched lengths are rejected
// rather than silently truncated.
func Zip(pairs [][2]string, infos []domain.SourceInfo) ([]domain.TextPair, error) {
	if infos != nil && len(infos) != len(pairs) {
		return nil, fmt.Errorf("source info count %d does not match pair count %d", len(infos), len(pairs))
	}

	out := make([]domain.TextPair, len(pairs))
	for i, p := range pairs {
		out[i] = domain.TextPair{Reference: p[0], Hypothesis: p[1]}
		if infos != nil {
			out[i].SourceInfo = infos[i]
		}
	}
	return out, nil
}

// Summarize aggregates comparison results into a Summary. The summary is
// recomputed from scratch on every call; an empty input yields a
// zero-valued summary with an empty breakdown.
func Summarize(results []domain.ComparisonResult) domain.Summary {
	summary := domain.Summary{
		ErrorBreakdown: make(map[domain.ErrorType]int),
	}

	if len(results) == 0 {
		return summary
	}

	var sumAccuracy, sumWER, sumCER, sumBLEU float64
	for _, r := range results {
		sumAccuracy += r.Accuracy
		sumWER += r.WER
		sumCER += r.CER
		sumBLEU += r.BLEU

		for _, e := range r.Errors {
			summary.ErrorBreakdown[e.Type]++
			summary.TotalErrors++
		}
	}

	n := float64(len(results))
	summary.TotalItems = len(results)
	summary.AvgAccuracy = metrics.Round(sumAccuracy/n, 2)
	summary.AvgWER = metrics.Round(sumWER/n, 4)
	summary.AvgCER = metrics.Round(sumCER/n, 4)
	summary.AvgBLEU = metrics.Round(sumBLEU/n, 2)

	return summary
}
