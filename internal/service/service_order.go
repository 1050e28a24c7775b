package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/validators"
	"github.com/MKhiriev/go-market-api/models"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	orderRepository store.OrderRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService wired to the given
// OrderRepository.
func NewOrderService(orderRepository store.OrderRepository, validator validators.Validator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		validator:       validator,
		logger:          logger,
	}
}

// ListOrders returns every order with its user and product joined in.
func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	orders, err := s.orderRepository.ListOrders(ctx)
	if err != nil {
		log.Err(err).Msg("listing orders ended with error")
		return nil, fmt.Errorf("listing orders ended with error: %w", err)
	}

	return orders, nil
}

// CreateOrder places a new order.
//
// Returns the persisted order in flat form or:
//   - A wrapped ErrValidation if any field fails validation.
//   - A wrapped store.ErrReferenceNotFound if the referenced user or
//     product does not exist.
func (s *orderService) CreateOrder(ctx context.Context, in models.OrderIn) (models.OrderCreated, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Int64("user_id", in.UserID).Int64("product_id", in.ProductID).Msg("invalid order data provided")
		return models.OrderCreated{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	createdOrder, err := s.orderRepository.CreateOrder(ctx, in)
	if err != nil {
		log.Err(err).Int64("user_id", in.UserID).Int64("product_id", in.ProductID).Msg("order creation ended with error")
		return models.OrderCreated{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	return createdOrder, nil
}

// GetOrder returns the order with the given id joined with its user and
// product, or a wrapped store.ErrOrderNotFound when no such order exists.
func (s *orderService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := s.orderRepository.GetOrder(ctx, id)
	if err != nil {
		log.Err(err).Int64("order_id", id).Msg("getting order ended with error")
		return models.Order{}, fmt.Errorf("getting order ended with error: %w", err)
	}

	return order, nil
}

// UpdateOrder replaces every field of an existing order. The repository
// re-checks the referenced user and product inside a transaction, so a
// dangling reference surfaces as store.ErrUserNotFound or
// store.ErrProductNotFound rather than a constraint violation.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, in models.OrderIn) (models.Order, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Int64("order_id", id).Msg("invalid order data provided")
		return models.Order{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updatedOrder, err := s.orderRepository.UpdateOrder(ctx, id, in)
	if err != nil {
		log.Err(err).Int64("order_id", id).Msg("order update ended with error")
		return models.Order{}, fmt.Errorf("order update ended with error: %w", err)
	}

	return updatedOrder, nil
}

// DeleteOrder removes the order with the given id, or returns a wrapped
// store.ErrOrderNotFound when no such order exists.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.orderRepository.DeleteOrder(ctx, id); err != nil {
		log.Err(err).Int64("order_id", id).Msg("order deletion ended with error")
		return fmt.Errorf("order deletion ended with error: %w", err)
	}

	return nil
}
