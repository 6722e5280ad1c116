package usecase

import (
	"context"
	"errors"
	"fmt"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/model"
)

func (uc *implUseCase) GetDriver(ctx context.Context, id string) (model.Driver, error) {
	d, err := uc.repo.GetDriver(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return model.Driver{}, assistant.ErrDriverNotFound
		}
		uc.l.Errorf(ctx, "assistant.usecase.GetDriver: repo.GetDriver %q: %v", id, err)
		return model.Driver{}, err
	}
	return d, nil
}

func (uc *implUseCase) PutDriver(ctx context.Context, input assistant.PutDriverInput) (model.Driver, error) {
	d := input.Driver
	if d.ID == "" {
		return model.Driver{}, fmt.Errorf("%w: id is required", assistant.ErrInvalidDriver)
	}
	if d.LanguagePreference == "" {
		d.LanguagePreference = uc.defaultLanguage
	}
	if d.Earnings == nil {
		d.Earnings = map[model.Date]model.DailyEarnings{}
	}

	if err := uc.repo.PutDriver(ctx, d); err != nil {
		if errors.Is(err, repository.ErrInvalidDriver) {
			return model.Driver{}, fmt.Errorf("%w: %v", assistant.ErrInvalidDriver, err)
		}
		uc.l.Errorf(ctx, "assistant.usecase.PutDriver: repo.PutDriver %q: %v", d.ID, err)
		return model.Driver{}, err
	}
	return d.Clone(), nil
}

func (uc *implUseCase) SetEarnings(ctx context.Context, input assistant.SetEarningsInput) (assistant.SetEarningsOutput, error) {
	if input.TotalEarnings < 0 || input.Expenses < 0 || input.CompletedTrips < 0 {
		return assistant.SetEarningsOutput{}, fmt.Errorf("%w: amounts and trips must not be negative", assistant.ErrInvalidEarnings)
	}

	day, err := uc.resolveDay(input.Day)
	if err != nil {
		return assistant.SetEarningsOutput{}, err
	}

	e := model.DailyEarnings{
		TotalEarnings:  input.TotalEarnings,
		Expenses:       input.Expenses,
		NetEarnings:    input.TotalEarnings - input.Expenses,
		CompletedTrips: input.CompletedTrips,
		Penalties:      input.Penalties,
		Rewards:        input.Rewards,
	}
	if input.NetEarnings != nil {
		e.NetEarnings = *input.NetEarnings
	}
	if e.NetEarnings < 0 {
		return assistant.SetEarningsOutput{}, fmt.Errorf("%w: net earnings must not be negative", assistant.ErrInvalidEarnings)
	}
	e = e.Clone()

	err = uc.repo.SetEarnings(ctx, repository.SetEarningsOptions{
		DriverID: input.DriverID,
		Date:     day,
		Earnings: e,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return assistant.SetEarningsOutput{}, assistant.ErrDriverNotFound
		}
		uc.l.Errorf(ctx, "assistant.usecase.SetEarnings: repo.SetEarnings %q %s: %v", input.DriverID, day, err)
		return assistant.SetEarningsOutput{}, err
	}

	return assistant.SetEarningsOutput{Date: day, Earnings: e}, nil
}

func (uc *implUseCase) Commands() []string {
	return uc.kb.Commands()
}

// resolveDay turns "today", "yesterday", "3 days ago", YYYY-MM-DD and the
// like into a calendar day relative to the clock.
func (uc *implUseCase) resolveDay(expr string) (model.Date, error) {
	if expr == "" {
		expr = "today"
	}
	t, err := uc.dates.Parse(expr, uc.now())
	if err != nil {
		return model.Date{}, fmt.Errorf("%w: %v", assistant.ErrInvalidDate, err)
	}
	return model.DateOf(t), nil
}
