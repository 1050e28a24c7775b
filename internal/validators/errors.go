package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooShort     = errors.New("name must be at least 2 characters long")
	ErrSurnameTooShort  = errors.New("surname must be at least 2 characters long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmailTooLong     = errors.New("email must be at most 120 characters long")
	ErrInvalidPassword  = errors.New("password must be between 9 and 25 characters long")
	ErrEmptyProductName = errors.New("product name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidProductID = errors.New("invalid product ID")
	ErrMissingDate      = errors.New("order date is required")
)
