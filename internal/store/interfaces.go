package store

import (
	"context"

	"github.com/MKhiriev/go-market-api/models"
)

// UserRepository is the data-access contract for the users table.
// The password carried in [models.UserIn] must already be a digest;
// repositories never hash credentials themselves.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in models.UserIn) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserIn) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ProductRepository is the data-access contract for the products table.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductIn) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, in models.ProductIn) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderRepository is the data-access contract for the orders table.
//
// Reads resolve the flat user_id/product_id references into nested objects
// via an inner join; CreateOrder returns the flat just-inserted row as
// [models.OrderCreated] without re-fetching the referenced entities.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, in models.OrderIn) (models.OrderCreated, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	UpdateOrder(ctx context.Context, id int64, in models.OrderIn) (models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
