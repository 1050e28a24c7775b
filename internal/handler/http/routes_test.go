package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/mock"
	"github.com/MKhiriev/go-market-api/internal/service"
	"github.com/MKhiriev/go-market-api/models"
)

// newMockedHandler wires a Handler to gomock service mocks.
func newMockedHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockUserService, *mock.MockProductService, *mock.MockOrderService) {
	t.Helper()
	userSvc := mock.NewMockUserService(ctrl)
	productSvc := mock.NewMockProductService(ctrl)
	orderSvc := mock.NewMockOrderService(ctrl)

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			UserService:    userSvc,
			ProductService: productSvc,
			OrderService:   orderSvc,
		},
	}
	return h, userSvc, productSvc, orderSvc
}

func TestInit_AllRoutesRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, productSvc, orderSvc := newMockedHandler(t, ctrl)

	userSvc.EXPECT().ListUsers(gomock.Any()).Return(nil, nil).AnyTimes()
	userSvc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	userSvc.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	userSvc.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	userSvc.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	productSvc.EXPECT().ListProducts(gomock.Any()).Return(nil, nil).AnyTimes()
	productSvc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, nil).AnyTimes()
	productSvc.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, nil).AnyTimes()
	productSvc.EXPECT().UpdateProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Product{}, nil).AnyTimes()
	productSvc.EXPECT().DeleteProduct(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	orderSvc.EXPECT().ListOrders(gomock.Any()).Return(nil, nil).AnyTimes()
	orderSvc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(models.OrderCreated{}, nil).AnyTimes()
	orderSvc.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Return(models.Order{}, nil).AnyTimes()
	orderSvc.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Order{}, nil).AnyTimes()
	orderSvc.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/"},
		{http.MethodPost, "/users/"},
		{http.MethodGet, "/users/1"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodGet, "/products/"},
		{http.MethodPost, "/products/"},
		{http.MethodGet, "/products/1"},
		{http.MethodPut, "/products/1"},
		{http.MethodDelete, "/products/1"},
		{http.MethodGet, "/orders/"},
		{http.MethodPost, "/orders/"},
		{http.MethodGet, "/orders/1"},
		{http.MethodPut, "/orders/1"},
		{http.MethodDelete, "/orders/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code,
				"method should be handled: %s %s", tt.method, tt.path)
		})
	}
}

func TestInit_TraceIDHeaderOnEveryResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _, _ := newMockedHandler(t, ctrl)
	userSvc.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newMockedHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/customers/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
