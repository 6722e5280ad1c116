package repository

import (
	"context"
	"fmt"

	"porter-saathi/internal/model"
)

// SampleDrivers returns the demo drivers with ledgers anchored on today.
func SampleDrivers(today model.Date) []model.Driver {
	rajesh := model.Driver{
		ID:                 "driver123",
		Name:               "Rajesh Kumar",
		Phone:              "9876543210",
		LanguagePreference: model.DefaultLanguage,
		Vehicle: model.Vehicle{
			Type:            "Tata Ace",
			Number:          "MH01AB1234",
			InsuranceExpiry: "2024-12-31",
		},
		EmergencyContact: &model.EmergencyContact{
			Name:         "Sunita Devi",
			Phone:        "9123456789",
			Relationship: "Wife",
		},
		Earnings: map[model.Date]model.DailyEarnings{
			today: {
				TotalEarnings:  2500,
				Expenses:       500,
				NetEarnings:    2000,
				CompletedTrips: 8,
				Penalties:      map[string]string{"penalty1": "Late delivery by 30 minutes"},
				Rewards:        map[string]string{"reward1": "Customer appreciation bonus"},
			},
			today.AddDays(-1): {
				TotalEarnings:  2200,
				Expenses:       450,
				NetEarnings:    1750,
				CompletedTrips: 7,
			},
			today.AddDays(-7): {
				TotalEarnings:  2100,
				Expenses:       400,
				NetEarnings:    1700,
				CompletedTrips: 6,
			},
		},
	}

	mohan := model.Driver{
		ID:                 "driver456",
		Name:               "Mohan Singh",
		Phone:              "8765432109",
		LanguagePreference: model.DefaultLanguage,
		Vehicle: model.Vehicle{
			Type:            "Mahindra Bolero",
			Number:          "DL02CD5678",
			InsuranceExpiry: "2024-10-15",
		},
		EmergencyContact: &model.EmergencyContact{
			Name:         "Ramesh Singh",
			Phone:        "8987654321",
			Relationship: "Brother",
		},
		Earnings: map[model.Date]model.DailyEarnings{},
	}

	return []model.Driver{rajesh, mohan}
}

// Seed writes SampleDrivers into repo.
func Seed(ctx context.Context, repo Repository, today model.Date) error {
	for _, d := range SampleDrivers(today) {
		if err := repo.PutDriver(ctx, d); err != nil {
			return fmt.Errorf("seed %s: %w", d.ID, err)
		}
	}
	return nil
}
