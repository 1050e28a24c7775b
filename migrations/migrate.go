package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given goose dialect
// ("pgx" or "sqlite3"). Each dialect keeps its own migration directory;
// the DDL for auto-generated ids differs between the two engines.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite3"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
