package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_translation_accuracy/internal/pool"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// Optimized implements the whitespace canonicalization with a precomputed
// ASCII decision table and pooled buffers. Output is identical to the
// default Whitespace normalizer; this variant trades simplicity for fewer
// allocations on hot paths such as large batch comparisons.
type Optimized struct {
	// isSpace[b] reports whether the ASCII byte b is whitespace.
	isSpace [128]bool

	bytePool *pool.BufferPool
}

// NewOptimized creates a new optimized whitespace normalizer.
func NewOptimized() ports.Normalizer {
	n := &Optimized{
		bytePool: pool.NewBufferPool(8192),
	}
	for i := 0; i < 128; i++ {
		n.isSpace[i] = unicode.IsSpace(rune(i))
	}
	return n
}

// Normalize returns the canonical form of text.
func (n *Optimized) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	lastWasSpace := true // swallow leading whitespace
	if asciiOnly {
		for i := 0; i < len(text); i++ {
			b := text[i]
			if n.isSpace[b] {
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			} else {
				*buffer = append(*buffer, b)
				lastWasSpace = false
			}
		}
	} else {
		for _, r := range text {
			if r < 128 {
				if n.isSpace[byte(r)] {
					if !lastWasSpace {
						*buffer = append(*buffer, ' ')
						lastWasSpace = true
					}
				} else {
					*buffer = append(*buffer, byte(r))
					lastWasSpace = false
				}
			} else if unicode.IsSpace(r) {
				// Covers the full-width space U+3000.
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			} else {
				*buffer = append(*buffer, string(r)...)
				lastWasSpace = false
			}
		}
	}

	// Drop the single trailing space a whitespace-terminated input leaves.
	out := *buffer
	if len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return string(out)
}
