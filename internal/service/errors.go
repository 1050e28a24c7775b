package service

import "errors"

var (
	// ErrValidation wraps every validator error returned to callers; the
	// HTTP layer maps it to an Unprocessable Entity status while keeping
	// the field-specific message from the wrapped error.
	ErrValidation = errors.New("validation error")

	// ErrHashingPassword is returned when bcrypt fails to produce a
	// digest, which in practice means the plaintext exceeded bcrypt's
	// 72-byte limit or the process ran out of entropy.
	ErrHashingPassword = errors.New("error hashing password")
)
