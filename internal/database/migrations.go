package database

import "embed"

// Migrations holds the schema migration SQL files shared by cmd/migrator
// and cmd/marbled, so both embed the exact same source of truth.
//
//go:embed migrations/*.sql
var Migrations embed.FS
