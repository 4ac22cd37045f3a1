package domain

// ErrorType labels a single discrepancy found by the error classifier.
// The string values are stable so that reports can aggregate by type
// across runs.
type ErrorType string

const (
	// ErrorDeletion marks a character present in the reference but missing
	// from the hypothesis.
	ErrorDeletion ErrorType = "Deletion"
	// ErrorInsertion marks a character present in the hypothesis but absent
	// from the reference.
	ErrorInsertion ErrorType = "Insertion"
	// ErrorSubstitution marks a one-for-one character swap. Swapped
	// characters in translated text are frequently homophones or
	// look-alikes, hence the qualifier.
	ErrorSubstitution ErrorType = "Substitution (possible homophone)"
	// ErrorUnknown is reserved for operations the classifier cannot label.
	ErrorUnknown ErrorType = "Unknown"
)

// SourceInfo is an opaque key-value mapping attached to a comparison by the
// caller (file name, slide number, page, ...). The core never interprets it.
type SourceInfo map[string]interface{}

// TextPair is one reference/hypothesis pair to evaluate.
type TextPair struct {
	Reference  string
	Hypothesis string
	SourceInfo SourceInfo
}

// ErrorDetail describes one discrepancy in the optimal character alignment
// of a reference/hypothesis pair. Immutable once created.
type ErrorDetail struct {
	// Position is the index into the aligned sequence, left to right.
	Position int
	// ReferenceText is the reference-side character, empty for insertions.
	ReferenceText string
	// HypothesisText is the hypothesis-side character, empty for deletions.
	HypothesisText string
	// Type classifies the discrepancy.
	Type ErrorType
}

// ComparisonResult holds all metrics and error details for one compared
// pair. Reference and Hypothesis carry the original (pre-normalization)
// texts. Immutable after construction.
type ComparisonResult struct {
	Reference  string
	Hypothesis string
	// Accuracy is the character-level match rate, 0-100.
	Accuracy float64
	// WER is the word error rate, >= 0 and uncapped.
	WER float64
	// CER is the character error rate, >= 0 and uncapped.
	CER float64
	// BLEU is the n-gram precision score, 0-100.
	BLEU float64
	// Errors lists discrepancies in left-to-right alignment order.
	Errors     []ErrorDetail
	SourceInfo SourceInfo
}

// Summary aggregates a sequence of comparison results. It is derived fresh
// from the full result list, never updated incrementally.
type Summary struct {
	TotalItems  int
	AvgAccuracy float64
	AvgWER      float64
	AvgCER      float64
	AvgBLEU     float64
	TotalErrors int
	// ErrorBreakdown counts every individual error detail by type.
	ErrorBreakdown map[ErrorType]int
}
