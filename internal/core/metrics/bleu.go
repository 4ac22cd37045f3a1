package metrics

import (
	"math"
	"strings"
)

// gramSep joins the words of an n-gram into a map key. The unit separator
// cannot appear inside a whitespace-delimited word, so joined grams never
// collide.
const gramSep = "\x1f"

// BLEU computes a simplified sentence-level BLEU score on whitespace
// delimited word n-grams, scaled 0-100.
//
// For each order n the modified precision is the clipped n-gram match
// count (each hypothesis n-gram counted at most as often as it occurs in
// the reference) divided by the total hypothesis n-grams of that order.
// The score is the geometric mean of the precisions when all of them are
// strictly positive, otherwise 0. The maximum order is 4, capped at the
// hypothesis word count so that short texts are scored on the orders they
// can actually form.
//
// No brevity penalty is applied; this is a precision-only score, not the
// full reference BLEU definition.
func BLEU(reference, hypothesis string) float64 {
	refWords := strings.Fields(reference)
	hypWords := strings.Fields(hypothesis)

	if len(hypWords) == 0 {
		return 0.0
	}

	maxOrder := 4
	if len(hypWords) < maxOrder {
		maxOrder = len(hypWords)
	}

	logSum := 0.0
	for n := 1; n <= maxOrder; n++ {
		p := modifiedPrecision(refWords, hypWords, n)
		if p <= 0 {
			return 0.0
		}
		logSum += math.Log(p)
	}

	return math.Exp(logSum/float64(maxOrder)) * 100
}

// modifiedPrecision computes the clipped n-gram precision of hypothesis
// against reference for a single order.
func modifiedPrecision(refWords, hypWords []string, n int) float64 {
	hypGrams := countNGrams(hypWords, n)
	if len(hypGrams) == 0 {
		return 0.0
	}
	refGrams := countNGrams(refWords, n)

	matched := 0
	total := 0
	for gram, count := range hypGrams {
		total += count
		if refCount, ok := refGrams[gram]; ok {
			if count < refCount {
				matched += count
			} else {
				matched += refCount
			}
		}
	}

	return float64(matched) / float64(total)
}

// countNGrams counts the word n-grams of the given order.
func countNGrams(words []string, n int) map[string]int {
	if n > len(words) {
		return nil
	}
	grams := make(map[string]int, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams[strings.Join(words[i:i+n], gramSep)]++
	}
	return grams
}
