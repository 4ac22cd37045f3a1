// Package editdist provides the two interchangeable edit-distance
// strategies: the built-in reference engine and a library-backed variant.
package editdist

import (
	"github.com/baditaflorin/go_translation_accuracy/internal/core/align"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Builtin is the reference distance strategy, backed by the rolling-row
// variant of the alignment engine. It is the strategy whose behavior the
// test suite certifies.
type Builtin struct{}

// NewBuiltin creates the built-in distance strategy.
func NewBuiltin() ports.DistanceStrategy {
	return Builtin{}
}

// WordDistance returns the word-level edit distance.
func (Builtin) WordDistance(reference, hypothesis []string) int {
	return align.Distance(reference, hypothesis)
}

// CharDistance returns the rune-level edit distance.
func (Builtin) CharDistance(reference, hypothesis string) int {
	return align.Distance([]rune(reference), []rune(hypothesis))
}
