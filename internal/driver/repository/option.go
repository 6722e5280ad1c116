package repository

import "porter-saathi/internal/model"

// SetEarningsOptions holds parameters for writing one day of a driver's ledger.
type SetEarningsOptions struct {
	DriverID string
	Date     model.Date
	Earnings model.DailyEarnings
}
