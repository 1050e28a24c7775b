package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-market-api/internal/service"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/utils"
	"github.com/MKhiriev/go-market-api/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusUnprocessableEntity,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrProductNotFound:    http.StatusNotFound,
	store.ErrOrderNotFound:      http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrReferenceNotFound:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// validationErrors lists every field-level error the validators package can
// produce, so that the caller-facing 422 body carries the exact constraint
// that failed instead of a generic message.
var validationErrors = []error{
	validators.ErrNameTooShort,
	validators.ErrSurnameTooShort,
	validators.ErrInvalidEmail,
	validators.ErrEmailTooLong,
	validators.ErrInvalidPassword,
	validators.ErrEmptyProductName,
	validators.ErrNegativePrice,
	validators.ErrInvalidUserID,
	validators.ErrInvalidProductID,
	validators.ErrMissingDate,
}

func validationMessage(err error) string {
	for _, validationErr := range validationErrors {
		if errors.Is(err, validationErr) {
			return validationErr.Error()
		}
	}
	return "invalid input"
}

// errorResponse is the JSON body sent with every non-2xx response.
type errorResponse struct {
	Message string `json:"message"`
}

// writeError maps err through the status map and writes the JSON error body.
// messages maps a status code to a caller-facing message; validation failures
// carry the failed constraint, and statuses without an entry fall back to the
// standard status text, so internal error details never leak to clients.
func writeError(w http.ResponseWriter, err error, messages map[int]string) {
	status := statusFromError(err)

	message, ok := messages[status]
	if !ok {
		message = http.StatusText(status)
	}
	if status == http.StatusUnprocessableEntity {
		message = validationMessage(err)
	}

	utils.WriteJSON(w, errorResponse{Message: message}, status) //nolint:errcheck // response is already committed
}
