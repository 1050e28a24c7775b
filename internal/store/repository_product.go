package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/models"
)

// productRepository is the SQL-backed implementation of [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// ListProducts returns all catalog entries in storage order.
func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProducts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 50)

	for rows.Next() {
		var product models.Product

		if scanErr := rows.Scan(&product.ID, &product.ProductName, &product.Description, &product.Price); scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// CreateProduct persists a new catalog entry and returns the input fields
// merged with the server-assigned id.
func (r *productRepository) CreateProduct(ctx context.Context, in models.ProductIn) (models.Product, error) {
	log := logger.FromContext(ctx)

	product := models.Product{
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       in.Price,
	}

	row := r.db.QueryRowContext(ctx, createProduct, in.ProductName, in.Description, in.Price)
	if err := row.Scan(&product.ID); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: product insert failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// GetProduct retrieves one product by id. Returns [ErrProductNotFound] when
// no row matches.
func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, getProduct, id)

	if err := row.Scan(&product.ID, &product.ProductName, &product.Description, &product.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Int64("id", id).Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// UpdateProduct fully replaces the product at id and returns the new field
// set merged with the id. Returns [ErrProductNotFound] when the update
// affected zero rows.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, in models.ProductIn) (models.Product, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateProduct, in.ProductName, in.Description, in.Price, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Int64("id", id).Msg("failed to execute product update")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Int64("id", id).Msg("failed to read affected rows")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Product{}, ErrProductNotFound
	}

	return models.Product{
		ID:          id,
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       in.Price,
	}, nil
}

// DeleteProduct removes the product at id. Returns [ErrProductNotFound] when
// nothing was removed. Deletion does not cascade to referencing orders; the
// foreign key constraint rejects the delete while orders still point at it.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("id", id).Msg("failed to execute product delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
