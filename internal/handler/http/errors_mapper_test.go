package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-market-api/internal/service"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrNameTooShort), http.StatusUnprocessableEntity},
		{"user not found", fmt.Errorf("getting user ended with error: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"product not found", store.ErrProductNotFound, http.StatusNotFound},
		{"order not found", store.ErrOrderNotFound, http.StatusNotFound},
		{"email taken", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict},
		{"dangling order reference", store.ErrReferenceNotFound, http.StatusConflict},
		{"scan failure", store.ErrScanningRow, http.StatusInternalServerError},
		{"unclassified", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidPassword)
	assert.Equal(t, validators.ErrInvalidPassword.Error(), validationMessage(err))

	assert.Equal(t, "invalid input", validationMessage(errors.New("unclassified")))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		messages   map[int]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "mapped message used",
			err:        store.ErrUserNotFound,
			messages:   map[int]string{http.StatusNotFound: "user not found"},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"user not found"}`,
		},
		{
			name:       "validation carries the failed constraint",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyProductName),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"message":"product name is required"}`,
		},
		{
			name:       "internal errors fall back to status text",
			err:        errors.New("pq: deadlock detected"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err, tt.messages)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
