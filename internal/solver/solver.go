// Package solver implements the iterative depth-first search that finds a
// winning sequence of jumps from a starting board, deduplicating equivalent
// positions via canonicalization so that symmetric subtrees are explored
// once.
package solver

import (
	"github.com/tinkersmith/marble-solitaire/internal/board"
	"github.com/tinkersmith/marble-solitaire/internal/movetable"
	"github.com/tinkersmith/marble-solitaire/internal/visited"
)

// StackFrame is one level of the explicit DFS stack. board is always the
// canonical image of the real position at this depth; transforms is the
// cumulative list of canonicalizing transforms from the root down to (and
// including) this frame, needed to translate a move recorded in canonical
// space back to the real board's coordinates once a solution is found.
// moveIndex/moveEnd/movesStart index into a single shared move buffer
// rather than each frame owning its own slice.
type StackFrame struct {
	board        board.Board
	moveIndex    int
	moveEnd      int
	movesStart   int
	transforms   []board.Transform
	incomingMove board.Move
}

// Solve runs the search from start and returns the winning move sequence in
// start's own coordinate space, or nil if start cannot be solved. The
// returned slice is empty but non-nil if start is already won.
func Solve(start board.Board) []board.Move {
	return SolveWith(start, visited.New())
}

// SolveWith runs the search using a caller-provided visited set, clearing
// it first. Reusing a set across calls — especially the mmap-backed dense
// implementation — amortizes its setup cost across many solves.
func SolveWith(start board.Board, seen visited.Set) []board.Move {
	seen.Clear()

	canonStart, t0 := start.Canonicalize()
	seen.TestAndSet(canonStart.Pack37())

	buf := make([]board.Move, 0, 256)
	rootMoves := movetable.ValidMoves(canonStart)
	buf = append(buf, rootMoves...)

	stack := []StackFrame{{
		board:      canonStart,
		moveIndex:  0,
		moveEnd:    len(rootMoves),
		movesStart: 0,
		transforms: []board.Transform{t0},
	}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.board.HasWon() {
			return reconstruct(stack)
		}

		if top.moveIndex >= top.moveEnd {
			buf = buf[:top.movesStart]
			stack = stack[:len(stack)-1]
			continue
		}

		m := buf[top.moveIndex]
		top.moveIndex++

		child := m.Apply(top.board)
		canonChild, t := child.Canonicalize()
		if seen.TestAndSet(canonChild.Pack37()) {
			continue
		}

		childMoves := movetable.ValidMoves(canonChild)
		bufStart := len(buf)
		buf = append(buf, childMoves...)

		childTransforms := make([]board.Transform, len(top.transforms)+1)
		copy(childTransforms, top.transforms)
		childTransforms[len(top.transforms)] = t

		stack = append(stack, StackFrame{
			board:        canonChild,
			moveIndex:    bufStart,
			moveEnd:      bufStart + len(childMoves),
			movesStart:   bufStart,
			transforms:   childTransforms,
			incomingMove: m,
		})
	}

	return nil
}

// IsSolvable reports whether start has a winning move sequence.
func IsSolvable(start board.Board) bool {
	return Solve(start) != nil
}

// reconstruct walks the winning stack from the terminal frame back to the
// root, undoing each move's parent-frame transforms to recover it in real
// board coordinates, then reverses the result into forward chronological
// order.
func reconstruct(stack []StackFrame) []board.Move {
	moves := make([]board.Move, 0, len(stack)-1)
	for i := len(stack) - 1; i > 0; i-- {
		parent := stack[i-1]
		m := stack[i].incomingMove
		for j := len(parent.transforms) - 1; j >= 0; j-- {
			m = m.Transform(board.InverseTransform(parent.transforms[j]))
		}
		moves = append(moves, m)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
