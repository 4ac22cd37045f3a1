package align

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		target   string
		expected int
	}{
		{
			name:     "Identical texts",
			source:   "kitten",
			target:   "kitten",
			expected: 0,
		},
		{
			name:     "Classic kitten sitting",
			source:   "kitten",
			target:   "sitting",
			expected: 3,
		},
		{
			name:     "Both empty",
			source:   "",
			target:   "",
			expected: 0,
		},
		{
			name:     "Empty source reduces to target length",
			source:   "",
			target:   "abc",
			expected: 3,
		},
		{
			name:     "Empty target reduces to source length",
			source:   "abcd",
			target:   "",
			expected: 4,
		},
		{
			name:     "Single CJK substitution",
			source:   "配管工事",
			target:   "排管工事",
			expected: 1,
		},
		{
			name:     "CJK substitution plus deletion",
			source:   "ヘルメットを着用してください",
			target:   "ヘルメットを着用して下さい",
			expected: 2,
		},
		{
			name:     "Completely disjoint",
			source:   "abc",
			target:   "xyz",
			expected: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance([]rune(tc.source), []rune(tc.target))
			if got != tc.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tc.source, tc.target, got, tc.expected)
			}
		})
	}
}

func TestDistanceWords(t *testing.T) {
	source := []string{"the", "quick", "brown", "fox"}
	target := []string{"the", "slow", "brown", "fox", "cub"}
	if got := Distance(source, target); got != 2 {
		t.Errorf("word distance = %d, want 2", got)
	}
}

func TestTableMatchesRollingRow(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", ""},
		{"", "abc"},
		{"abcd", ""},
		{"配管工事", "排管工事"},
		{"ヘルメットを着用してください", "ヘルメットを着用して下さい"},
		{"flaw", "lawn"},
		{"intention", "execution"},
	}

	for _, p := range pairs {
		full := NewTable([]rune(p[0]), []rune(p[1])).Distance()
		rolling := Distance([]rune(p[0]), []rune(p[1]))
		if full != rolling {
			t.Errorf("distance mismatch for (%q, %q): table=%d rolling=%d", p[0], p[1], full, rolling)
		}
	}
}

// TestBacktraceTieBreak pins the fixed operation preference on ties:
// deletion, then insertion, then substitution. "ab" -> "ba" can be solved
// by two substitutions or by delete+insert at the same cost; the engine
// must pick the delete/insert path deterministically.
func TestBacktraceTieBreak(t *testing.T) {
	table := NewTable([]rune("ab"), []rune("ba"))
	if d := table.Distance(); d != 2 {
		t.Fatalf("distance = %d, want 2", d)
	}

	steps := table.Backtrace()
	expected := []Op{OpDelete, OpMatch, OpInsert}
	if len(steps) != len(expected) {
		t.Fatalf("backtrace has %d steps, want %d", len(steps), len(expected))
	}
	for i, op := range expected {
		if steps[i].Op != op {
			t.Errorf("step %d op = %d, want %d", i, steps[i].Op, op)
		}
	}
}

// TestBacktraceReconstructs verifies that replaying a backtrace (which is
// discovered right to left) consumes exactly the two input sequences and
// emits one unit cost per non-match step.
func TestBacktraceReconstructs(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"abcd", ""},
		{"ヘルメットを着用してください", "ヘルメットを着用して下さい"},
		{"水分補給を忘れずに", "水分補給を忘れずに"},
	}

	for _, p := range pairs {
		source := []rune(p[0])
		target := []rune(p[1])
		table := NewTable(source, target)
		steps := table.Backtrace()

		sourceConsumed, targetConsumed, cost := 0, 0, 0
		for _, step := range steps {
			switch step.Op {
			case OpMatch:
				sourceConsumed++
				targetConsumed++
			case OpSubstitute:
				sourceConsumed++
				targetConsumed++
				cost++
			case OpDelete:
				sourceConsumed++
				cost++
			case OpInsert:
				targetConsumed++
				cost++
			}
		}

		if sourceConsumed != len(source) || targetConsumed != len(target) {
			t.Errorf("backtrace for (%q, %q) consumed (%d, %d), want (%d, %d)",
				p[0], p[1], sourceConsumed, targetConsumed, len(source), len(target))
		}
		if cost != table.Distance() {
			t.Errorf("backtrace cost for (%q, %q) = %d, want %d", p[0], p[1], cost, table.Distance())
		}
	}
}

func TestBacktraceSingleDeletion(t *testing.T) {
	table := NewTable([]rune("あい"), []rune("あ"))
	steps := table.Backtrace()

	if len(steps) != 2 {
		t.Fatalf("backtrace has %d steps, want 2", len(steps))
	}
	if steps[0].Op != OpDelete || steps[0].Source != 'い' {
		t.Errorf("first discovered step = %+v, want deletion of い", steps[0])
	}
	if steps[1].Op != OpMatch || steps[1].Source != 'あ' {
		t.Errorf("second discovered step = %+v, want match of あ", steps[1])
	}
}
