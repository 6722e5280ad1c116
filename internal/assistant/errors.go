package assistant

import "errors"

var (
	ErrDriverNotFound  = errors.New("driver not found")
	ErrInvalidDriver   = errors.New("invalid driver")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidEarnings = errors.New("invalid earnings")
)
