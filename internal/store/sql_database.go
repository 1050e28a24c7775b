package store

import (
	"database/sql"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/migrations"
)

// DB wraps the standard library connection pool together with the dialect it
// was opened for. All repositories share one DB value.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
