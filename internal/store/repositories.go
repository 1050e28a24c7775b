package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-market-api/internal/config"
	"github.com/MKhiriev/go-market-api/internal/logger"
)

// Repositories groups all data-access repositories into a single value that
// is constructed once at startup and passed by reference to the service
// layer. There is no other process-wide database state.
type Repositories struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	OrderRepository   OrderRepository
}

// NewRepositories initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a database connection: PostgreSQL via pgx by default, or a local
//     SQLite file when cfg.DB.Driver is "sqlite3".
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Repositories] value wired to fresh
//     repositories sharing the one connection pool.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
		OrderRepository:   NewOrderRepository(db, logger),
	}, nil
}
