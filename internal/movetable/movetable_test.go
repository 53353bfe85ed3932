package movetable

import (
	"testing"

	"github.com/tinkersmith/marble-solitaire/internal/board"
)

func TestTableHas76Moves(t *testing.T) {
	tab := Table()
	if len(tab) != 76 {
		t.Fatalf("Table() has %d moves, want 76", len(tab))
	}
}

func TestTableIsDeterministicAndShared(t *testing.T) {
	a := Table()
	b := Table()
	if len(a) != len(b) {
		t.Fatalf("successive Table() calls disagree on length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("successive Table() calls disagree at index %d", i)
		}
	}
}

func TestValidMovesOnDefaultStart(t *testing.T) {
	// With only (2,3) empty, the legal opening jumps are exactly the four
	// that land on (2,3) from two cells away in each direction.
	moves := ValidMoves(board.NewDefault())
	if len(moves) != 4 {
		t.Fatalf("ValidMoves on default start = %d, want 4", len(moves))
	}
	for _, m := range moves {
		r, c := m.Dest()
		if r != 2 || c != 3 {
			t.Fatalf("opening move %v lands on (%d,%d), want (2,3)", m, r, c)
		}
	}
}
