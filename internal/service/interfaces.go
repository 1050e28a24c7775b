package service

import (
	"context"

	"github.com/MKhiriev/go-market-api/models"
)

// UserService carries the business rules for user accounts: input
// validation and the single credential-write path that bcrypt-hashes the
// password before it reaches storage. Both Create and Update run through
// that path, so a stored password is always a digest.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in models.UserIn) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserIn) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ProductService carries the business rules for catalog products.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductIn) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, in models.ProductIn) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderService carries the business rules for orders. Reads return the
// nested [models.Order]; Create returns the flat [models.OrderCreated].
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, in models.OrderIn) (models.OrderCreated, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	UpdateOrder(ctx context.Context, id int64, in models.OrderIn) (models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
