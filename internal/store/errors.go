package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when an id-based user lookup, update or
	// delete affects zero rows.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when an id-based product lookup, update
	// or delete affects zero rows.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when an id-based order lookup, update or
	// delete affects zero rows. A dangling order excluded by the inner join
	// collapses to the same error.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE on the
	// users table violates the unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrReferenceNotFound is returned when an order write violates a
	// foreign key constraint, i.e. the referenced user or product row does
	// not exist.
	ErrReferenceNotFound = errors.New("referenced user or product not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
