// Package repository persists solved-game records and leaderboard reads
// behind pgx, the way the teacher persists game sessions and highscores.
package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Queries is the shared handle every query method hangs off of.
type Queries struct {
	db *pgxpool.Pool
}

// New wraps a connection pool in a Queries.
func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
