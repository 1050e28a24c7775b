package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/models"
)

func TestCreateOrder_FlatResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().CreateOrder(gomock.Any(), models.OrderIn{
		UserID:      1,
		ProductID:   2,
		Date:        models.NewDate(2024, time.January, 1),
		IsDelivered: false,
	}).Return(models.OrderCreated{
		ID:          10,
		UserID:      1,
		ProductID:   2,
		Date:        models.NewDate(2024, time.January, 1),
		IsDelivered: false,
	}, nil)

	body := `{"user_id":1,"product_id":2,"date":"2024-01-01","is_delivered":false}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	// flat shape: ids, not nested objects
	assert.Contains(t, rr.Body.String(), `"user_id":1`)
	assert.Contains(t, rr.Body.String(), `"product_id":2`)
	assert.Contains(t, rr.Body.String(), `"date":"2024-01-01"`)
	assert.NotContains(t, rr.Body.String(), `"user":{`)
}

func TestCreateOrder_DanglingReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(models.OrderCreated{}, fmt.Errorf("order creation ended with error: %w", store.ErrReferenceNotFound))

	body := `{"user_id":999,"product_id":2,"date":"2024-01-01","is_delivered":false}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"referenced user or product does not exist"}`, rr.Body.String())
}

func TestGetOrder_NestedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().GetOrder(gomock.Any(), int64(10)).Return(models.Order{
		ID:          10,
		User:        models.User{ID: 1, Name: "Ann", Surname: "Lee", Email: "ann@x.com"},
		Product:     models.Product{ID: 2, ProductName: "Pen", Description: "Blue ink", Price: 150},
		Date:        models.NewDate(2024, time.January, 1),
		IsDelivered: true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user":{`)
	assert.Contains(t, rr.Body.String(), `"product":{`)
	assert.Contains(t, rr.Body.String(), `"product_name":"Pen"`)
	assert.Contains(t, rr.Body.String(), `"is_delivered":true`)
}

func TestGetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().GetOrder(gomock.Any(), int64(404)).
		Return(models.Order{}, fmt.Errorf("getting order ended with error: %w", store.ErrOrderNotFound))

	req := httptest.NewRequest(http.MethodGet, "/orders/404", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"order not found"}`, rr.Body.String())
}

func TestUpdateOrder_MissingProductNamed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().UpdateOrder(gomock.Any(), int64(10), gomock.Any()).
		Return(models.Order{}, fmt.Errorf("order update ended with error: %w", store.ErrProductNotFound))

	body := `{"user_id":1,"product_id":999,"date":"2024-01-01","is_delivered":false}`
	req := httptest.NewRequest(http.MethodPut, "/orders/10", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"product not found"}`, rr.Body.String())
}

func TestListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{
		{ID: 1, User: models.User{ID: 1}, Product: models.Product{ID: 2}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user":{`)
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, orderSvc := newMockedHandler(t, ctrl)
	router := h.Init()

	orderSvc.EXPECT().DeleteOrder(gomock.Any(), int64(10)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orders/10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"order deleted"}`, rr.Body.String())
}
