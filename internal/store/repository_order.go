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

// orderRepository is the SQL-backed implementation of [OrderRepository].
//
// An order row holds flat user_id/product_id references; every read goes
// through the inner join built in sql_queries.go and reassembles the row
// into a nested [models.Order].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// scanOrder reads one joined row into a nested [models.Order]. The column
// order must match orderJoinBuilder.
func scanOrder(row interface{ Scan(dest ...any) error }) (models.Order, error) {
	var order models.Order

	err := row.Scan(
		&order.ID,
		&order.User.ID, &order.User.Name, &order.User.Surname, &order.User.Email, &order.User.Password,
		&order.Product.ID, &order.Product.ProductName, &order.Product.Description, &order.Product.Price,
		&order.Date, &order.IsDelivered,
	)

	return order, err
}

// ListOrders returns every order joined with its user and product. Orders
// whose references do not resolve are excluded by the inner join.
func (r *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("failed to execute query for listing orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 50)

	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*orderRepository.ListOrders").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		orders = append(orders, order)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*orderRepository.ListOrders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}

// CreateOrder inserts the flat order row and returns the input merged with
// the generated id. The referenced user and product are not re-fetched here;
// reads return the nested shape.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferenceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *orderRepository) CreateOrder(ctx context.Context, in models.OrderIn) (models.OrderCreated, error) {
	log := logger.FromContext(ctx)

	order := models.OrderCreated{
		UserID:      in.UserID,
		ProductID:   in.ProductID,
		Date:        in.Date,
		IsDelivered: in.IsDelivered,
	}

	row := r.db.QueryRowContext(ctx, createOrder, in.UserID, in.ProductID, in.Date, in.IsDelivered)
	if err := row.Scan(&order.ID); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").
			Int64("user_id", in.UserID).
			Int64("product_id", in.ProductID).
			Msg("error: order insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.OrderCreated{}, ErrReferenceNotFound
		default:
			return models.OrderCreated{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return order, nil
}

// GetOrder fetches one order by id through the join. Returns
// [ErrOrderNotFound] both when the order id does not exist and when the
// inner join excluded the row due to a dangling reference.
func (r *orderRepository) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOrderQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.GetOrder").Int64("id", id).Msg("failed to create query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.GetOrder").Int64("id", id).Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// UpdateOrder fully replaces the order row at id and returns the nested
// read shape.
//
// The referenced user and product are fetched inside the same transaction
// as the UPDATE, so the returned nesting cannot silently miss data: a
// reference that does not resolve fails the whole operation with
// [ErrUserNotFound] or [ErrProductNotFound].
func (r *orderRepository) UpdateOrder(ctx context.Context, id int64, in models.OrderIn) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("id", id).Msg("failed to begin transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	order := models.Order{
		ID:          id,
		Date:        in.Date,
		IsDelivered: in.IsDelivered,
	}

	// validate both references before touching the order row
	row := tx.QueryRowContext(ctx, getUser, in.UserID)
	if err := row.Scan(&order.User.ID, &order.User.Name, &order.User.Surname, &order.User.Email, &order.User.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("user_id", in.UserID).Msg("failed to fetch referenced user")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	row = tx.QueryRowContext(ctx, getProduct, in.ProductID)
	if err := row.Scan(&order.Product.ID, &order.Product.ProductName, &order.Product.Description, &order.Product.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("product_id", in.ProductID).Msg("failed to fetch referenced product")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	result, err := tx.ExecContext(ctx, updateOrder, in.UserID, in.ProductID, in.Date, in.IsDelivered, id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("id", id).Msg("failed to execute order update")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("id", id).Msg("failed to read affected rows")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Order{}, ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("id", id).Msg("failed to commit transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// DeleteOrder removes the order at id. Returns [ErrOrderNotFound] when
// nothing was removed.
func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOrder, id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("id", id).Msg("failed to execute order delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
