package board

import "fmt"

// Move is a single jump: SetBit marks the destination cell gained, ClearBits
// marks the origin and the jumped-over cell lost. Both masks are board-shaped
// bit patterns, so TransformBoard applies to them directly.
type Move struct {
	SetBit    Board
	ClearBits Board
}

// NewMove builds the move that jumps the marble at (r, c) over (mr, mc) to
// land on (rp, cp). Callers are expected to have validated the geometry;
// NewMove does not check legality against any particular board.
func NewMove(r, c, mr, mc, rp, cp int) Move {
	return Move{
		SetBit:    Board(1) << bitIndex(rp, cp),
		ClearBits: (Board(1) << bitIndex(r, c)) | (Board(1) << bitIndex(mr, mc)),
	}
}

// Apply returns the board after playing m on b. Callers must ensure m is
// legal on b; Apply performs no validation.
func (m Move) Apply(b Board) Board {
	return (b | m.SetBit) &^ m.ClearBits
}

// Undo returns the board before m was played on b (the inverse of Apply).
func (m Move) Undo(b Board) Board {
	return (b &^ m.SetBit) | m.ClearBits
}

// IsLegalOn reports whether m can be played on b: the destination is empty
// and both cells it clears are occupied.
func (m Move) IsLegalOn(b Board) bool {
	return b&m.ClearBits == m.ClearBits && b&m.SetBit == 0
}

// Transform applies the dihedral transform t to m, producing the
// corresponding move on the transformed board.
func (m Move) Transform(t Transform) Move {
	return Move{
		SetBit:    TransformBoard(m.SetBit, t),
		ClearBits: TransformBoard(m.ClearBits, t),
	}
}

func singleBitCoord(mask Board) (r, c int) {
	for r = 0; r < numRows; r++ {
		for c = 0; c < numCols; c++ {
			if !playable[r][c] {
				continue
			}
			if mask&(Board(1)<<bitIndex(r, c)) != 0 {
				return r, c
			}
		}
	}
	return -1, -1
}

// Dest returns the row, column of the cell m's jump lands on.
func (m Move) Dest() (r, c int) {
	return singleBitCoord(m.SetBit)
}

// Origin returns the row, column of the cell m's jump departs from — the
// one of the two cleared cells two rows or columns from Dest.
func (m Move) Origin() (r, c int) {
	dr, dc := m.Dest()
	rest := m.ClearBits
	for r = 0; r < numRows; r++ {
		for c = 0; c < numCols; c++ {
			if !playable[r][c] || rest&(Board(1)<<bitIndex(r, c)) == 0 {
				continue
			}
			if abs(r-dr) == 2 || abs(c-dc) == 2 {
				return r, c
			}
		}
	}
	return -1, -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction names the geometric direction of travel from Origin to Dest:
// "up", "down", "left" or "right".
func (m Move) Direction() string {
	or, oc := m.Origin()
	dr, dc := m.Dest()
	switch {
	case dr < or:
		return "up"
	case dr > or:
		return "down"
	case dc < oc:
		return "left"
	default:
		return "right"
	}
}

// String renders m in the "<row> <col> <direction>" grammar, using m's
// origin cell as <row> <col>.
func (m Move) String() string {
	r, c := m.Origin()
	return fmt.Sprintf("%d %d %s", r, c, m.Direction())
}

// Pack37 packs the board's 33 playable bits (plus the four always-zero
// unplayable cells (1,1), (1,5), (5,1), (5,5)) into the low 37 bits of a uint64, row-major,
// most significant bits first. It is injective on playable-cell content, so
// it is suitable as a dense visited-set key.
func (b Board) Pack37() uint64 {
	var packed uint64
	for r := 0; r < numRows; r++ {
		for c := colStart[r]; c <= colEnd[r]; c++ {
			packed <<= 1
			packed |= uint64(getBit(b, r, c))
		}
	}
	return packed
}
