package repository

import "errors"

var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrInvalidDriver  = errors.New("driver id is required")
	ErrFailedToGet    = errors.New("failed to get driver")
	ErrFailedToPut    = errors.New("failed to put driver")
	ErrFailedToSet    = errors.New("failed to set earnings")
)
