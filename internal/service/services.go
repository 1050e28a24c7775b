package service

import (
	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/validators"
)

type Services struct {
	UserService    UserService
	ProductService ProductService
	OrderService   OrderService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	inputValidator := validators.NewInputValidator()

	return &Services{
		UserService:    NewUserService(repositories.UserRepository, inputValidator, logger),
		ProductService: NewProductService(repositories.ProductRepository, inputValidator, logger),
		OrderService:   NewOrderService(repositories.OrderRepository, inputValidator, logger),
	}
}
