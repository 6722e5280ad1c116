package memory

import (
	"context"

	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/model"
)

// GetDriver returns a deep copy of the stored driver.
func (r *implRepository) GetDriver(ctx context.Context, id string) (model.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[id]
	if !ok {
		return model.Driver{}, repository.ErrDriverNotFound
	}
	return d.Clone(), nil
}

// PutDriver stores a deep copy of driver, replacing any driver with the same id.
func (r *implRepository) PutDriver(ctx context.Context, driver model.Driver) error {
	if driver.ID == "" {
		return repository.ErrInvalidDriver
	}
	if driver.LanguagePreference == "" {
		driver.LanguagePreference = model.DefaultLanguage
	}

	stored := driver.Clone()

	r.mu.Lock()
	r.drivers[driver.ID] = stored
	r.mu.Unlock()

	r.l.Debugf(ctx, "memory.PutDriver: id=%s days=%d", driver.ID, len(stored.Earnings))
	return nil
}

// SetEarnings overwrites one ledger day. Unknown drivers are rejected.
func (r *implRepository) SetEarnings(ctx context.Context, opt repository.SetEarningsOptions) error {
	e := opt.Earnings.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drivers[opt.DriverID]
	if !ok {
		return repository.ErrDriverNotFound
	}

	if d.Earnings == nil {
		d.Earnings = make(map[model.Date]model.DailyEarnings)
	}
	d.Earnings[opt.Date] = e
	r.drivers[opt.DriverID] = d

	r.l.Debugf(ctx, "memory.SetEarnings: id=%s date=%s", opt.DriverID, opt.Date)
	return nil
}
