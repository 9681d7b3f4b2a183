package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")
)
