package assistant

import (
	"context"

	"porter-saathi/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessQuery classifies the query and answers it from the driver's
	// record. The error is non-nil only for storage faults; an unknown
	// driver, missing data or an unclassified query still yield a Response.
	ProcessQuery(ctx context.Context, req Request) (Response, error)
	// RaiseEmergency runs the emergency flow with the caller's location.
	RaiseEmergency(ctx context.Context, input EmergencyInput) (Response, error)

	// Driver records
	GetDriver(ctx context.Context, id string) (model.Driver, error)
	PutDriver(ctx context.Context, input PutDriverInput) (model.Driver, error)
	SetEarnings(ctx context.Context, input SetEarningsInput) (SetEarningsOutput, error)

	// Commands lists example voice commands for the client UI.
	Commands() []string
}
