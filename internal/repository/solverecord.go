package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SolveRecord is one played-and-finished game: who played it (an optional,
// unverified display name), which empty cell it started from, how many
// moves it took, how long it took, and whether it was won.
type SolveRecord struct {
	SolveRecordID int64
	Username      *string
	StartRow      int
	StartCol      int
	MoveCount     int
	ElapsedMs     float64
	Won           bool
	CreatedAt     pgtype.Timestamptz
}

// CreateSolveRecordParams are the columns needed to record a finished game.
type CreateSolveRecordParams struct {
	Username  *string
	StartRow  int
	StartCol  int
	MoveCount int
	ElapsedMs float64
	Won       bool
}

// CreateSolveRecord inserts a finished game and returns the stored row.
func (q *Queries) CreateSolveRecord(ctx context.Context, params CreateSolveRecordParams) (*SolveRecord, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_record (
			username, start_row, start_col, move_count, elapsed_ms, won
		) VALUES (
			@username, @start_row, @start_col, @move_count, @elapsed_ms, @won
		) RETURNING *`,
		pgx.NamedArgs{
			"username":   params.Username,
			"start_row":  params.StartRow,
			"start_col":  params.StartCol,
			"move_count": params.MoveCount,
			"elapsed_ms": params.ElapsedMs,
			"won":        params.Won,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRecord])
}
