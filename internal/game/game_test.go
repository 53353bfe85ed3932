package game

import (
	"strings"
	"testing"
)

func TestNewDefaultStart(t *testing.T) {
	g := New()
	if g.MarblesLeft() != 32 {
		t.Fatalf("MarblesLeft = %d, want 32", g.MarblesLeft())
	}
	if g.MoveCount() != 0 {
		t.Fatalf("MoveCount = %d, want 0", g.MoveCount())
	}
	if g.HasWon() {
		t.Fatalf("fresh game should not be won")
	}
	if !g.HasMoves() {
		t.Fatalf("fresh game should have legal moves")
	}
}

func TestMakeMoveThenUndoRoundTrips(t *testing.T) {
	g := New()
	before := g.Board()
	if !g.IsValidMove(0, 3, 2, 3) {
		t.Fatalf("expected (0,3)->(2,3) to be legal on the default start")
	}
	if err := g.MakeMove(0, 3, 2, 3); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if g.MoveCount() != 1 {
		t.Fatalf("MoveCount = %d, want 1", g.MoveCount())
	}
	if g.MarblesLeft() != 31 {
		t.Fatalf("MarblesLeft = %d, want 31", g.MarblesLeft())
	}
	if err := g.UndoMove(); err != nil {
		t.Fatalf("UndoMove: %v", err)
	}
	if g.Board() != before {
		t.Fatalf("board after undo does not match board before the move")
	}
	if g.MoveCount() != 0 {
		t.Fatalf("MoveCount after undo = %d, want 0", g.MoveCount())
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := New()
	err := g.MakeMove(0, 0, 2, 0)
	if err == nil {
		t.Fatalf("expected an error for a move through a non-playable cell")
	}
}

func TestUndoMoveWithoutHistory(t *testing.T) {
	g := New()
	if err := g.UndoMove(); err != ErrNoHistory {
		t.Fatalf("UndoMove on fresh game = %v, want ErrNoHistory", err)
	}
}

func TestBestMoveAndSolution(t *testing.T) {
	g := New()
	m, ok := g.BestMove()
	if !ok {
		t.Fatalf("expected the default start to have a best move")
	}
	r, c := m.Origin()
	dr, dc := m.Dest()
	if !g.IsValidMove(r, c, dr, dc) {
		t.Fatalf("BestMove returned a move not legal on the current board")
	}
	sol := g.Solution()
	if len(sol) != 31 {
		t.Fatalf("Solution length = %d, want 31", len(sol))
	}
}

func TestMakeMoveDirAndStrings(t *testing.T) {
	g := New()
	if err := g.MakeMoveDir(0, 3, "down"); err != nil {
		t.Fatalf("MakeMoveDir: %v", err)
	}
	if err := g.MakeMoveDir(0, 3, "sideways"); err != ErrBadDirection {
		t.Fatalf("MakeMoveDir with bad direction = %v, want ErrBadDirection", err)
	}

	best := g.BestMoveString()
	if best == "" {
		t.Fatalf("expected a non-empty best move string")
	}
	if parts := strings.Fields(best); len(parts) != 3 {
		t.Fatalf("best move string %q does not match <row> <col> <direction>", best)
	}

	solution := g.SolutionString()
	if solution == "No solution exists." {
		t.Fatalf("expected the default start to remain solvable after one move")
	}
	if n := strings.Count(solution, "\n") + 1; n != 30 {
		t.Fatalf("solution has %d lines, want 30", n)
	}
}

func TestSetCustomStartClearsHistory(t *testing.T) {
	g := New()
	g.MakeMoveDir(0, 3, "down")
	g.SetCustomStart(0, 2)
	if g.MoveCount() != 0 {
		t.Fatalf("SetCustomStart should clear move history")
	}
	if g.Board() != g.start {
		t.Fatalf("SetCustomStart should reset the board to the new start")
	}
}
