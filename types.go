// types.go
package translationaccuracy

import (
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Aliases re-exporting the result model and extension points, so importers
// outside this module can name them.
type (
	// SourceInfo carries caller-supplied provenance for a pair, echoed
	// unchanged in its result.
	SourceInfo = domain.SourceInfo

	// TextPair is one reference/hypothesis pair with optional source info.
	TextPair = domain.TextPair

	// ErrorType labels a character-level discrepancy.
	ErrorType = domain.ErrorType

	// ErrorDetail describes one discrepancy found by the alignment.
	ErrorDetail = domain.ErrorDetail

	// ComparisonResult is the full evaluation of one pair.
	ComparisonResult = domain.ComparisonResult

	// Summary aggregates a batch of comparison results.
	Summary = domain.Summary

	// Normalizer canonicalizes text before comparison. Implement it to
	// plug in custom normalization via WithNormalizer.
	Normalizer = ports.Normalizer

	// DistanceStrategy computes edit distances. Implement it to plug in a
	// custom engine via WithDistanceStrategy.
	DistanceStrategy = ports.DistanceStrategy
)

const (
	ErrorDeletion     = domain.ErrorDeletion
	ErrorInsertion    = domain.ErrorInsertion
	ErrorSubstitution = domain.ErrorSubstitution
	ErrorUnknown      = domain.ErrorUnknown
)
