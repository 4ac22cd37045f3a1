package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text unchanged",
			input:    "配管工事",
			expected: "配管工事",
		},
		{
			name:     "Collapse internal run",
			input:    "hello   world",
			expected: "hello world",
		},
		{
			name:     "Trim leading and trailing",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "Ideographic space collapses to ASCII space",
			input:    "配管　　工事",
			expected: "配管 工事",
		},
		{
			name:     "Tabs and newlines collapse",
			input:    "a\tb\nc\r\nd",
			expected: "a b c d",
		},
		{
			name:     "Whitespace only becomes empty",
			input:    " \t\n　",
			expected: "",
		},
		{
			name:     "Empty stays empty",
			input:    "",
			expected: "",
		},
	}

	standard := NewWhitespace()
	optimized := NewOptimized()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := standard.Normalize(tc.input); got != tc.expected {
				t.Errorf("Whitespace.Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if got := optimized.Normalize(tc.input); got != tc.expected {
				t.Errorf("Optimized.Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// The optimized normalizer must agree with the straightforward one on any
// input, ASCII or not.
func TestOptimizedMatchesStandard(t *testing.T) {
	inputs := []string{
		"the quick  brown\tfox",
		"　全角　スペース　",
		"mixed 　 spacing　here",
		"no-spaces-at-all",
		"   ",
		"ヘルメットを着用してください",
	}

	standard := NewWhitespace()
	optimized := NewOptimized()

	for _, in := range inputs {
		want := standard.Normalize(in)
		if got := optimized.Normalize(in); got != want {
			t.Errorf("Optimized.Normalize(%q) = %q, standard gives %q", in, got, want)
		}
	}
}

func TestPassthrough(t *testing.T) {
	p := NewPassthrough()
	for _, in := range []string{"", "  spaced  out  ", "配管　工事"} {
		if got := p.Normalize(in); got != in {
			t.Errorf("Passthrough.Normalize(%q) = %q", in, got)
		}
	}
}
