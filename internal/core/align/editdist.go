// Package align implements the edit-distance engine: a full
// dynamic-programming alignment of two token sequences with unit costs,
// retaining the chosen operation per cell so the optimal alignment can be
// reconstructed by backtrace.
//
// Cell (i,j) holds the minimum cost to align the first i source tokens with
// the first j target tokens. When several operations reach the same minimum
// cost the engine always prefers deletion, then insertion, then
// substitution. The order is fixed so that error classification is stable
// across runs.
package align

import "github.com/baditaflorin/go_translation_accuracy/internal/pool"

// Op identifies the edit operation chosen for a cell.
type Op uint8

const (
	// OpMatch consumes one equal token from both sequences.
	OpMatch Op = iota
	// OpDelete consumes one source token.
	OpDelete
	// OpInsert consumes one target token.
	OpInsert
	// OpSubstitute consumes one token from both sequences.
	OpSubstitute
)

// Step is one element of a backtrace. Steps are produced from the final
// cell back to the origin, so a backtrace lists the alignment right to
// left. Source is the zero value for insertions, Target for deletions.
type Step[T comparable] struct {
	Op     Op
	Source T
	Target T
}

// Table is the full (m+1)x(n+1) dynamic-programming table with a parallel
// operation table. Memory use is O(m*n); use Distance for the rolling-row
// variant when no backtrace is needed.
type Table[T comparable] struct {
	source []T
	target []T
	cost   [][]int
	ops    [][]Op
}

// NewTable computes the full alignment of source and target.
func NewTable[T comparable](source, target []T) *Table[T] {
	m, n := len(source), len(target)

	cost := make([][]int, m+1)
	ops := make([][]Op, m+1)
	for i := 0; i <= m; i++ {
		cost[i] = make([]int, n+1)
		ops[i] = make([]Op, n+1)
	}

	// Base cases: first column is all deletions, first row all insertions.
	for i := 1; i <= m; i++ {
		cost[i][0] = i
		ops[i][0] = OpDelete
	}
	for j := 1; j <= n; j++ {
		cost[0][j] = j
		ops[0][j] = OpInsert
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if source[i-1] == target[j-1] {
				cost[i][j] = cost[i-1][j-1]
				ops[i][j] = OpMatch
				continue
			}

			// Fixed tie-break order: delete, insert, substitute.
			best := cost[i-1][j] + 1
			op := OpDelete
			if c := cost[i][j-1] + 1; c < best {
				best = c
				op = OpInsert
			}
			if c := cost[i-1][j-1] + 1; c < best {
				best = c
				op = OpSubstitute
			}
			cost[i][j] = best
			ops[i][j] = op
		}
	}

	return &Table[T]{source: source, target: target, cost: cost, ops: ops}
}

// Distance returns the minimum edit cost between the two sequences.
func (t *Table[T]) Distance() int {
	return t.cost[len(t.source)][len(t.target)]
}

// SourceLen returns the source sequence length.
func (t *Table[T]) SourceLen() int { return len(t.source) }

// TargetLen returns the target sequence length.
func (t *Table[T]) TargetLen() int { return len(t.target) }

// Backtrace retraces the operation table from cell (m,n) to (0,0) and
// returns every step of the optimal alignment in discovery order, i.e.
// right to left. Matches consume both indices, deletions the source index,
// insertions the target index, substitutions both.
func (t *Table[T]) Backtrace() []Step[T] {
	var zero T
	i, j := len(t.source), len(t.target)
	steps := make([]Step[T], 0, max(i, j))

	for i > 0 || j > 0 {
		switch t.ops[i][j] {
		case OpMatch, OpSubstitute:
			steps = append(steps, Step[T]{Op: t.ops[i][j], Source: t.source[i-1], Target: t.target[j-1]})
			i--
			j--
		case OpDelete:
			steps = append(steps, Step[T]{Op: OpDelete, Source: t.source[i-1], Target: zero})
			i--
		case OpInsert:
			steps = append(steps, Step[T]{Op: OpInsert, Source: zero, Target: t.target[j-1]})
			j--
		}
	}

	return steps
}

// rowPool recycles DP rows across Distance calls.
var rowPool = pool.NewIntRowPool(256)

// Distance computes the edit distance with two rolling rows instead of the
// full table. Same costs and result as NewTable().Distance() at O(min-row)
// memory; no backtrace is possible.
func Distance[T comparable](source, target []T) int {
	m, n := len(source), len(target)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	prevPtr := rowPool.Get(n + 1)
	currPtr := rowPool.Get(n + 1)
	defer rowPool.Put(prevPtr)
	defer rowPool.Put(currPtr)
	prev, curr := *prevPtr, *currPtr

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
