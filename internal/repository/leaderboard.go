// custom query
package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// LeaderboardEntry is one ranked row: the display name attached at record
// time (if any), the starting cell solved from, and how many moves it took.
type LeaderboardEntry struct {
	SolveRecordID int64   `json:"solve_record_id"`
	Username      *string `json:"username"`
	StartRow      int     `json:"start_row"`
	StartCol      int     `json:"start_col"`
	MoveCount     int     `json:"move_count"`
	ElapsedMs     float64 `json:"elapsed_ms"`
}

// LeaderboardFilter narrows a leaderboard query to a single starting cell
// and/or a single username's records.
type LeaderboardFilter struct {
	Username *string
	StartRow *int
	StartCol *int
}

func (f LeaderboardFilter) whereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.StartRow != nil {
		clauses = append(clauses, "start_row = @start_row")
		args["start_row"] = *f.StartRow
	}
	if f.StartCol != nil {
		clauses = append(clauses, "start_col = @start_col")
		args["start_col"] = *f.StartCol
	}
	return strings.Join(clauses, " AND "), args
}

// GetLeaderboard returns won games matching filter, fewest moves first,
// ties broken by elapsed time.
func (q *Queries) GetLeaderboard(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardEntry, error) {
	query := `
	SELECT
		solve_record_id,
		username,
		start_row,
		start_col,
		move_count,
		elapsed_ms
	FROM solve_record
	WHERE won = true
	`

	whereClause, args := filter.whereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}
	query += " ORDER BY move_count ASC, elapsed_ms ASC;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardEntry])
}
