// Package classify turns the optimal character alignment of a
// reference/hypothesis pair into a labeled list of discrepancies.
package classify

import (
	"github.com/baditaflorin/go_translation_accuracy/internal/core/align"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
)

// Details aligns the two texts at character granularity and returns one
// ErrorDetail per non-matching alignment step, in left-to-right order.
//
// The position counter starts at max(len(reference), len(hypothesis)) and
// decrements once per backtrace step regardless of operation type, so
// positions index the aligned sequence rather than either input. The
// backtrace discovers steps right to left; the collected list is reversed
// before being returned, which keeps positions monotonically
// non-decreasing.
func Details(reference, hypothesis string) []domain.ErrorDetail {
	refRunes := []rune(reference)
	hypRunes := []rune(hypothesis)

	table := align.NewTable(refRunes, hypRunes)
	steps := table.Backtrace()

	position := max(len(refRunes), len(hypRunes))
	var details []domain.ErrorDetail
	for _, step := range steps {
		switch step.Op {
		case align.OpDelete:
			details = append(details, domain.ErrorDetail{
				Position:      position,
				ReferenceText: string(step.Source),
				Type:          domain.ErrorDeletion,
			})
		case align.OpInsert:
			details = append(details, domain.ErrorDetail{
				Position:       position,
				HypothesisText: string(step.Target),
				Type:           domain.ErrorInsertion,
			})
		case align.OpSubstitute:
			details = append(details, domain.ErrorDetail{
				Position:       position,
				ReferenceText:  string(step.Source),
				HypothesisText: string(step.Target),
				Type:           domain.ErrorSubstitution,
			})
		}
		position--
	}

	// Backtrace order is right to left; callers get left to right.
	for l, r := 0, len(details)-1; l < r; l, r = l+1, r-1 {
		details[l], details[r] = details[r], details[l]
	}

	return details
}
