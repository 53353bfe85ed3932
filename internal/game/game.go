// Package game wraps a board and its move history into the façade the CLI
// and the service front-end both drive: making and undoing moves, asking
// the solver for a hint or the full winning line, and rendering a move in
// the "<row> <col> <direction>" grammar.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinkersmith/marble-solitaire/internal/board"
	"github.com/tinkersmith/marble-solitaire/internal/movetable"
	"github.com/tinkersmith/marble-solitaire/internal/solver"
)

// ErrNoHistory is returned by UndoMove when no move has been made yet.
var ErrNoHistory = errors.New("game: no move to undo")

// ErrInvalidMove is returned by MakeMove when the requested jump is not
// legal on the current board.
type ErrInvalidMove struct {
	Row, Col, DestRow, DestCol int
}

func (e *ErrInvalidMove) Error() string {
	return fmt.Sprintf("game: invalid move from (%d,%d) to (%d,%d)", e.Row, e.Col, e.DestRow, e.DestCol)
}

// Game holds the live board and the moves played so far.
type Game struct {
	start   board.Board
	current board.Board
	history []board.Move
}

// New returns a game starting from the 32-marble board with cell (2,3)
// empty.
func New() *Game {
	return NewWithEmpty(2, 3)
}

// NewWithEmpty returns a game starting from a full board with (r, c)
// empty. Falls back to the (2,3)-empty start if (r, c) is not playable.
func NewWithEmpty(r, c int) *Game {
	b := board.NewWithEmpty(r, c)
	return &Game{start: b, current: b}
}

// SetCustomStart resets the game to a full board with (r, c) empty and
// clears the move history.
func (g *Game) SetCustomStart(r, c int) {
	g.start = board.NewWithEmpty(r, c)
	g.current = g.start
	g.history = nil
}

// Board returns the current board.
func (g *Game) Board() board.Board { return g.current }

// MarblesLeft returns the number of marbles remaining on the board.
func (g *Game) MarblesLeft() int { return g.current.Popcount() }

// MoveCount returns how many moves have been played.
func (g *Game) MoveCount() int { return len(g.history) }

// HasWon reports whether the game is won (exactly one marble remains).
func (g *Game) HasWon() bool { return g.current.HasWon() }

// HasMoves reports whether any legal move remains.
func (g *Game) HasMoves() bool {
	return len(movetable.ValidMoves(g.current)) > 0
}

// IsValidMove reports whether jumping (r, c) over its neighbour to (rp, cp)
// is legal right now.
func (g *Game) IsValidMove(r, c, rp, cp int) bool {
	return g.current.IsValidMove(r, c, rp, cp)
}

// MakeMove plays the jump from (r, c) to (rp, cp), returning ErrInvalidMove
// if it is not currently legal.
func (g *Game) MakeMove(r, c, rp, cp int) error {
	if !g.current.IsValidMove(r, c, rp, cp) {
		return &ErrInvalidMove{r, c, rp, cp}
	}
	mr, mc := (r+rp)/2, (c+cp)/2
	m := board.NewMove(r, c, mr, mc, rp, cp)
	g.current = m.Apply(g.current)
	g.history = append(g.history, m)
	return nil
}

// ErrBadDirection is returned by MakeMoveDir when dir isn't one of
// up/down/left/right.
var ErrBadDirection = errors.New("game: direction must be up, down, left or right")

func directionDelta(dir string) (dr, dc int, ok bool) {
	switch dir {
	case "up":
		return -2, 0, true
	case "down":
		return 2, 0, true
	case "left":
		return 0, -2, true
	case "right":
		return 0, 2, true
	default:
		return 0, 0, false
	}
}

// MakeMoveDir plays the jump starting at (r, c) in the given direction
// (up/down/left/right), translating it to a destination cell before
// deferring to MakeMove.
func (g *Game) MakeMoveDir(r, c int, dir string) error {
	dr, dc, ok := directionDelta(dir)
	if !ok {
		return ErrBadDirection
	}
	return g.MakeMove(r, c, r+dr, c+dc)
}

// UndoMove reverts the most recently played move, returning ErrNoHistory if
// none has been played.
func (g *Game) UndoMove() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}
	last := g.history[len(g.history)-1]
	g.current = last.Undo(g.current)
	g.history = g.history[:len(g.history)-1]
	return nil
}

// BestMove returns the first move of a winning line from the current
// position, and whether one exists.
func (g *Game) BestMove() (board.Move, bool) {
	moves := solver.Solve(g.current)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[0], true
}

// Solution returns a full winning move sequence from the current position,
// or nil if none exists.
func (g *Game) Solution() []board.Move {
	return solver.Solve(g.current)
}

// BestMoveString returns the "<row> <col> <direction>" rendering of the
// first move of a winning line, or "" if the current position is
// unsolvable.
func (g *Game) BestMoveString() string {
	m, ok := g.BestMove()
	if !ok {
		return ""
	}
	return m.String()
}

// SolutionString renders the full winning line, one move per line, or
// "No solution exists." if the current position is unsolvable.
func (g *Game) SolutionString() string {
	moves := g.Solution()
	if moves == nil {
		return "No solution exists."
	}
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
