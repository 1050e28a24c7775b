package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-market-api/models"
)

const (
	FieldName        = "name"
	FieldSurname     = "surname"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldProductName = "product_name"
	FieldPrice       = "price"
	FieldUserID      = "user_id"
	FieldProductID   = "product_id"
	FieldDate        = "date"
)

const (
	minNameLength     = 2
	maxEmailLength    = 120
	minPasswordLength = 9
	maxPasswordLength = 25
)

// InputValidator validates the inbound create/replace shapes of all three
// resources. Validation runs before any storage access; a failure here is
// surfaced as a 422 by the transport layer.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserIn:
		return v.validateUserIn(ctx, value, fields...)
	case *models.UserIn:
		return v.validateUserIn(ctx, *value, fields...)

	case models.ProductIn:
		return v.validateProductIn(ctx, value, fields...)
	case *models.ProductIn:
		return v.validateProductIn(ctx, *value, fields...)

	case models.OrderIn:
		return v.validateOrderIn(ctx, value, fields...)
	case *models.OrderIn:
		return v.validateOrderIn(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

func (v *InputValidator) validateUserIn(_ context.Context, user models.UserIn, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSurname, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if len(user.Name) < minNameLength {
				return ErrNameTooShort
			}
		case FieldSurname:
			if len(user.Surname) < minNameLength {
				return ErrSurnameTooShort
			}
		case FieldEmail:
			if len(user.Email) > maxEmailLength {
				return ErrEmailTooLong
			}
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(user.Password) < minPasswordLength || len(user.Password) > maxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateProductIn(_ context.Context, product models.ProductIn, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductName, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldProductName:
			if product.ProductName == "" {
				return ErrEmptyProductName
			}
		case FieldPrice:
			if product.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateOrderIn(_ context.Context, order models.OrderIn, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProductID, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if order.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldProductID:
			if order.ProductID <= 0 {
				return ErrInvalidProductID
			}
		case FieldDate:
			if order.Date.IsZero() {
				return ErrMissingDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
