// Package metrics computes the standard quality metrics for a
// reference/hypothesis pair: word error rate, character error rate,
// character-level accuracy, and a BLEU-style n-gram precision score.
//
// All functions are total over arbitrary Unicode input. Degenerate inputs
// (either text empty) have defined numeric outcomes and never fail:
//
//	WER/CER = 0.0 when both sides are empty
//	WER/CER = 1.0 when only the reference is empty
//
// Rates are normalized by reference length and deliberately uncapped; a
// hypothesis much longer than the reference can push them above 1.0.
package metrics

import (
	"math"
	"strings"

	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Calculator computes edit-distance based metrics using a configured
// distance strategy.
type Calculator struct {
	strategy ports.DistanceStrategy
}

// NewCalculator creates a metric calculator backed by the given strategy.
func NewCalculator(strategy ports.DistanceStrategy) *Calculator {
	return &Calculator{strategy: strategy}
}

// WER returns the word error rate: word-level edit distance divided by the
// reference word count.
func (c *Calculator) WER(reference, hypothesis string) float64 {
	refWords := strings.Fields(reference)
	hypWords := strings.Fields(hypothesis)

	if len(refWords) == 0 {
		if len(hypWords) == 0 {
			return 0.0
		}
		return 1.0
	}

	distance := c.strategy.WordDistance(refWords, hypWords)
	return float64(distance) / float64(len(refWords))
}

// CER returns the character error rate: rune-level edit distance divided by
// the reference rune count.
func (c *Calculator) CER(reference, hypothesis string) float64 {
	refLen := len([]rune(reference))
	hypLen := len([]rune(hypothesis))

	if refLen == 0 {
		if hypLen == 0 {
			return 0.0
		}
		return 1.0
	}

	distance := c.strategy.CharDistance(reference, hypothesis)
	return float64(distance) / float64(refLen)
}

// Accuracy returns the character-level match rate on a 0-100 scale,
// derived from CER.
func (c *Calculator) Accuracy(reference, hypothesis string) float64 {
	return AccuracyFromCER(reference, hypothesis, c.CER(reference, hypothesis))
}

// AccuracyFromCER derives accuracy from an already computed CER:
// max(0, (1-CER)*100), rounded to two decimals. An empty reference scores
// 100 against an empty hypothesis and 0 against anything else.
func AccuracyFromCER(reference, hypothesis string, cer float64) float64 {
	if reference == "" {
		if hypothesis == "" {
			return 100.0
		}
		return 0.0
	}
	accuracy := (1.0 - cer) * 100
	if accuracy < 0 {
		accuracy = 0
	}
	return Round(accuracy, 2)
}

// Round rounds a value to the given number of decimal places.
func Round(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}
