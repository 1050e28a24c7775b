package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It executes all user CRUD operations directly against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers returns all persisted users in storage order.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)

	for rows.Next() {
		var user models.User

		if scanErr := rows.Scan(&user.ID, &user.Name, &user.Surname, &user.Email, &user.Password); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// CreateUser persists a new user record and returns the input fields merged
// with the server-assigned id.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the email column → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, in models.UserIn) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Name:     in.Name,
		Surname:  in.Surname,
		Email:    in.Email,
		Password: in.Password,
	}

	row := r.db.QueryRowContext(ctx, createUser, in.Name, in.Surname, in.Email, in.Password)
	if err := row.Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// GetUser retrieves one user by id. Returns [ErrUserNotFound] when no row
// matches.
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, getUser, id)

	if err := row.Scan(&user.ID, &user.Name, &user.Surname, &user.Email, &user.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetUser").Int64("id", id).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUser fully replaces the user at id and returns the new field set
// merged with the id. Returns [ErrUserNotFound] when the update affected
// zero rows.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, in models.UserIn) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUser, in.Name, in.Surname, in.Email, in.Password, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("failed to execute user update")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("failed to read affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return models.User{
		ID:       id,
		Name:     in.Name,
		Surname:  in.Surname,
		Email:    in.Email,
		Password: in.Password,
	}, nil
}

// DeleteUser removes the user at id. Returns [ErrUserNotFound] when nothing
// was removed.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("failed to execute user delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
