// Package warmup exercises comparators and normalizers with generated
// sample pairs so that pools, caches, and the scheduler are warm before
// real traffic arrives.
package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Config defines configuration for warming up the system.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size (in words) for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 100,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations.
type Manager struct {
	logger      ports.Logger
	comparators []ports.Comparator
	normalizers []ports.Normalizer
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterComparator adds a comparator to be warmed up.
func (wm *Manager) RegisterComparator(c ports.Comparator) {
	wm.comparators = append(wm.comparators, c)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(n ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, n)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.comparators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpComparators(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers.
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpComparators runs warmup for all registered comparators.
func (wm *Manager) warmUpComparators(ctx context.Context) {
	if len(wm.comparators) == 0 {
		return
	}

	wm.logger.Debug("Warming up comparators", "count", len(wm.comparators))

	// Generate sample pairs of different divergence levels.
	reference := generateSampleText(wm.config.SampleTextSize)
	similar := perturbText(reference, 10)
	different := perturbText(reference, 2)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, comparator := range wm.comparators {
					// Alternate between divergence levels.
					switch j % 3 {
					case 0:
						_ = comparator.Compare(ctx, reference, reference, nil)
					case 1:
						_ = comparator.Compare(ctx, reference, similar, nil)
					default:
						_ = comparator.Compare(ctx, reference, different, nil)
					}
				}
			}
		}()
	}

	wg.Wait()
}

// sampleVocabulary feeds the sample text generator. Mixed scripts so the
// non-ASCII code paths warm up too.
var sampleVocabulary = []string{
	"translation", "reference", "hypothesis", "alignment", "precision",
	"安全", "確認", "作業", "品質", "評価",
}

// generateSampleText builds a deterministic sample text of the given word count.
func generateSampleText(words int) string {
	var sb strings.Builder
	for i := 0; i < words; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sampleVocabulary[i%len(sampleVocabulary)])
	}
	return sb.String()
}

// perturbText replaces every n-th rune of text, producing a hypothesis
// with roughly 1/n character errors.
func perturbText(text string, n int) string {
	runes := []rune(text)
	for i := n - 1; i < len(runes); i += n {
		if runes[i] != ' ' {
			runes[i] = '誤'
		}
	}
	return string(runes)
}
