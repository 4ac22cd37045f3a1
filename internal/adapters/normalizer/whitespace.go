package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Whitespace implements the default canonicalization applied before any
// metric is computed: every whitespace run (including the full-width space
// U+3000 common in CJK documents) collapses to a single ASCII space, and
// leading/trailing whitespace is dropped.
type Whitespace struct{}

// NewWhitespace creates a new whitespace normalizer.
func NewWhitespace() ports.Normalizer {
	return &Whitespace{}
}

// Normalize returns the canonical form of text.
func (n *Whitespace) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	// Starting in "space" state swallows leading whitespace.
	lastWasSpace := true
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				sb.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			sb.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

// Passthrough returns its input unchanged. Used when normalization is
// disabled by configuration.
type Passthrough struct{}

// NewPassthrough creates a new pass-through normalizer.
func NewPassthrough() ports.Normalizer {
	return &Passthrough{}
}

// Normalize returns text as is.
func (n *Passthrough) Normalize(text string) string {
	return text
}
