package solver

import (
	"testing"

	"github.com/tinkersmith/marble-solitaire/internal/board"
)

func replay(t *testing.T, start board.Board, moves []board.Move) board.Board {
	t.Helper()
	b := start
	for i, m := range moves {
		if !m.IsLegalOn(b) {
			t.Fatalf("move %d (%v) is not legal on the board it's played on", i, m)
		}
		b = m.Apply(b)
	}
	return b
}

func blankBoard(cells ...[2]int) board.Board {
	var b board.Board
	for _, rc := range cells {
		b = b.Set(rc[0], rc[1], true)
	}
	return b
}

func TestSolveAlreadyWon(t *testing.T) {
	start := blankBoard([2]int{3, 3})
	moves := Solve(start)
	if moves == nil {
		t.Fatalf("already-won board should solve (trivially), got nil")
	}
	if len(moves) != 0 {
		t.Fatalf("already-won board should need zero moves, got %d", len(moves))
	}
}

func TestSolveThreeInARow(t *testing.T) {
	start := blankBoard([2]int{2, 1}, [2]int{2, 2})
	moves := Solve(start)
	if moves == nil {
		t.Fatalf("two adjacent marbles with a clear landing cell should be solvable")
	}
	final := replay(t, start, moves)
	if !final.HasWon() {
		t.Fatalf("replaying solver's moves did not win")
	}
}

func TestSolveUnreachableIsolatedMarbles(t *testing.T) {
	// (0,3) and (6,3) are six rows apart with nothing between them able to
	// bridge the gap from just these two marbles: no move is ever legal.
	start := blankBoard([2]int{0, 3}, [2]int{6, 3})
	if moves := Solve(start); moves != nil {
		t.Fatalf("isolated marbles with no legal move should be unsolvable, got %v", moves)
	}
}

func TestSolveDefaultBoardIsSolvable(t *testing.T) {
	start := board.NewDefault()
	moves := Solve(start)
	if moves == nil {
		t.Fatalf("classic 32-marble start should be solvable")
	}
	if len(moves) != 31 {
		t.Fatalf("classic solve should take 31 moves, got %d", len(moves))
	}
	final := replay(t, start, moves)
	if !final.HasWon() {
		t.Fatalf("replaying solver's moves on the default board did not win")
	}
}

func TestIsSolvableMatchesSolve(t *testing.T) {
	start := blankBoard([2]int{0, 3}, [2]int{6, 3})
	if IsSolvable(start) {
		t.Fatalf("IsSolvable disagrees with Solve on an unsolvable board")
	}
	start2 := blankBoard([2]int{2, 1}, [2]int{2, 2})
	if !IsSolvable(start2) {
		t.Fatalf("IsSolvable disagrees with Solve on a solvable board")
	}
}
