// internal/repository/errors.go
package repository

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInsufficientStock = errors.New("insufficient stock")
)
