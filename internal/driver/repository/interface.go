package repository

import (
	"context"

	"porter-saathi/internal/model"
)

// Repository is the driver record store.
//
// Implementations must make every read of a single Driver atomic with respect
// to concurrent writes: GetDriver never returns a half-applied PutDriver or
// SetEarnings, and the returned value shares no memory with the store.
type Repository interface {
	// GetDriver returns ErrDriverNotFound when id is unknown.
	GetDriver(ctx context.Context, id string) (model.Driver, error)
	// PutDriver inserts or overwrites a driver by id, earnings included.
	PutDriver(ctx context.Context, driver model.Driver) error
	// SetEarnings overwrites one day of the ledger. It returns
	// ErrDriverNotFound when the driver does not exist.
	SetEarnings(ctx context.Context, opt SetEarningsOptions) error
}
