package ports

import (
	"context"

	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
)

// Comparator defines the interface for evaluating a hypothesis text against
// a reference text.
type Comparator interface {
	Compare(ctx context.Context, reference, hypothesis string, info domain.SourceInfo) domain.ComparisonResult
}

// DistanceStrategy defines the interface for computing edit distances at
// word and character granularity. Two implementations exist: the built-in
// dynamic-programming engine and a library-backed variant. The built-in one
// is the reference implementation; the Error Classifier always uses it
// because producing error details requires the full operation table.
type DistanceStrategy interface {
	// WordDistance returns the minimum number of single-word insertions,
	// deletions, and substitutions transforming reference into hypothesis.
	WordDistance(reference, hypothesis []string) int

	// CharDistance is the same at character (rune) granularity.
	CharDistance(reference, hypothesis string) int
}
