package editdist

import (
	"github.com/antzucaro/matchr"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Library is a distance strategy backed by third-party implementations:
// matchr at character granularity and golang-levenshtein at word
// granularity. Distances are identical to the built-in strategy (unit
// costs, same recurrence); only the implementation differs. Selected at
// configuration time for callers that prefer battle-tested library code on
// the hot path.
type Library struct{}

// NewLibrary creates the library-backed distance strategy.
func NewLibrary() ports.DistanceStrategy {
	return Library{}
}

// WordDistance returns the word-level edit distance. golang-levenshtein
// aligns rune sequences, so each distinct word is interned as a synthetic
// rune (starting in the private use area) before alignment; equality of
// interned runes is exactly equality of words. DefaultOptionsWithSub gives
// unit-cost substitutions; the library's DefaultOptions charges 2 for a
// substitution, which is a different metric.
func (Library) WordDistance(reference, hypothesis []string) int {
	interned := make(map[string]rune, len(reference)+len(hypothesis))
	next := rune(0xE000)

	encode := func(words []string) []rune {
		runes := make([]rune, len(words))
		for i, w := range words {
			r, ok := interned[w]
			if !ok {
				r = next
				next++
				interned[w] = r
			}
			runes[i] = r
		}
		return runes
	}

	return levenshtein.DistanceForStrings(encode(reference), encode(hypothesis), levenshtein.DefaultOptionsWithSub)
}

// CharDistance returns the rune-level edit distance.
func (Library) CharDistance(reference, hypothesis string) int {
	return matchr.Levenshtein(reference, hypothesis)
}
