// internal/services/errors.go
package services

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
