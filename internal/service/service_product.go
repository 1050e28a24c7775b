package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/validators"
	"github.com/MKhiriev/go-market-api/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	productRepository store.ProductRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewProductService constructs a ProductService wired to the given
// ProductRepository.
func NewProductService(productRepository store.ProductRepository, validator validators.Validator, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListProducts returns the full catalog.
func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := s.productRepository.ListProducts(ctx)
	if err != nil {
		log.Err(err).Msg("listing products ended with error")
		return nil, fmt.Errorf("listing products ended with error: %w", err)
	}

	return products, nil
}

// CreateProduct adds a new product to the catalog.
//
// Returns the persisted product or a wrapped ErrValidation if any field
// fails validation.
func (s *productService) CreateProduct(ctx context.Context, in models.ProductIn) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("product_name", in.ProductName).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	createdProduct, err := s.productRepository.CreateProduct(ctx, in)
	if err != nil {
		log.Err(err).Str("product_name", in.ProductName).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return createdProduct, nil
}

// GetProduct returns the product with the given id, or a wrapped
// store.ErrProductNotFound when no such product exists.
func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("getting product ended with error")
		return models.Product{}, fmt.Errorf("getting product ended with error: %w", err)
	}

	return product, nil
}

// UpdateProduct replaces every field of an existing product.
func (s *productService) UpdateProduct(ctx context.Context, id int64, in models.ProductIn) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Int64("product_id", id).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updatedProduct, err := s.productRepository.UpdateProduct(ctx, id, in)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updatedProduct, nil
}

// DeleteProduct removes the product with the given id, or returns a wrapped
// store.ErrProductNotFound when no such product exists.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		log.Err(err).Int64("product_id", id).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}
