package postgre

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/model"
)

// GetDriver reads the profile and the whole ledger inside one read-only,
// repeatable-read transaction so the result is a consistent snapshot.
func (r *implRepository) GetDriver(ctx context.Context, id string) (model.Driver, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return model.Driver{}, fmt.Errorf("%w: begin: %v", repository.ErrFailedToGet, err)
	}
	defer tx.Rollback(ctx)

	var (
		d         model.Driver
		vehicle   []byte
		emergency []byte
	)
	err = tx.QueryRow(ctx, querySelectDriver, id).Scan(&d.ID, &d.Name, &d.Phone, &d.LanguagePreference, &vehicle, &emergency)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Driver{}, repository.ErrDriverNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: select driver %s: %v", r.scope("GetDriver"), id, err)
		return model.Driver{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	if len(vehicle) > 0 {
		if err := json.Unmarshal(vehicle, &d.Vehicle); err != nil {
			return model.Driver{}, fmt.Errorf("%w: vehicle: %v", repository.ErrFailedToGet, err)
		}
	}
	if len(emergency) > 0 {
		var ec model.EmergencyContact
		if err := json.Unmarshal(emergency, &ec); err != nil {
			return model.Driver{}, fmt.Errorf("%w: emergency contact: %v", repository.ErrFailedToGet, err)
		}
		d.EmergencyContact = &ec
	}

	rows, err := tx.Query(ctx, querySelectEarnings, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: select earnings %s: %v", r.scope("GetDriver"), id, err)
		return model.Driver{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	defer rows.Close()

	d.Earnings = make(map[model.Date]model.DailyEarnings)
	for rows.Next() {
		var row earningsRow
		if err := rows.Scan(&row.Day, &row.TotalEarnings, &row.Expenses, &row.NetEarnings, &row.CompletedTrips, &row.Penalties, &row.Rewards); err != nil {
			return model.Driver{}, fmt.Errorf("%w: scan earnings: %v", repository.ErrFailedToGet, err)
		}
		day, e, err := row.toModel()
		if err != nil {
			return model.Driver{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
		}
		d.Earnings[day] = e
	}
	if err := rows.Err(); err != nil {
		return model.Driver{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	return d, nil
}

// PutDriver upserts the profile and replaces the whole ledger.
func (r *implRepository) PutDriver(ctx context.Context, driver model.Driver) error {
	if driver.ID == "" {
		return repository.ErrInvalidDriver
	}
	if driver.LanguagePreference == "" {
		driver.LanguagePreference = model.DefaultLanguage
	}

	vehicle, err := encodeJSON(driver.Vehicle)
	if err != nil {
		return fmt.Errorf("%w: vehicle: %v", repository.ErrFailedToPut, err)
	}
	emergency, err := encodeJSON(driver.EmergencyContact)
	if err != nil {
		return fmt.Errorf("%w: emergency contact: %v", repository.ErrFailedToPut, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", repository.ErrFailedToPut, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, queryUpsertDriver, driver.ID, driver.Name, driver.Phone, driver.LanguagePreference, vehicle, emergency); err != nil {
		r.l.Errorf(ctx, "%s: upsert %s: %v", r.scope("PutDriver"), driver.ID, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	if _, err := tx.Exec(ctx, queryDeleteEarnings, driver.ID); err != nil {
		return fmt.Errorf("%w: clear ledger: %v", repository.ErrFailedToPut, err)
	}
	for day, e := range driver.Earnings {
		if err := upsertEarnings(ctx, tx, driver.ID, day, e); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", repository.ErrFailedToPut, err)
	}
	return nil
}

// SetEarnings overwrites one ledger day. The driver row is locked so a
// concurrent PutDriver cannot interleave with the write.
func (r *implRepository) SetEarnings(ctx context.Context, opt repository.SetEarningsOptions) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", repository.ErrFailedToSet, err)
	}
	defer tx.Rollback(ctx)

	var one int
	err = tx.QueryRow(ctx, queryLockDriver, opt.DriverID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrDriverNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: lock driver: %v", repository.ErrFailedToSet, err)
	}

	if err := upsertEarnings(ctx, tx, opt.DriverID, opt.Date, opt.Earnings); err != nil {
		r.l.Errorf(ctx, "%s: %s %s: %v", r.scope("SetEarnings"), opt.DriverID, opt.Date, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", repository.ErrFailedToSet, err)
	}
	return nil
}

func upsertEarnings(ctx context.Context, tx pgx.Tx, driverID string, day model.Date, e model.DailyEarnings) error {
	penalties, err := encodeReasons(e.Penalties)
	if err != nil {
		return fmt.Errorf("penalties: %w", err)
	}
	rewards, err := encodeReasons(e.Rewards)
	if err != nil {
		return fmt.Errorf("rewards: %w", err)
	}

	_, err = tx.Exec(ctx, queryUpsertEarnings,
		driverID,
		day.String(),
		e.TotalEarnings,
		e.Expenses,
		e.NetEarnings,
		e.CompletedTrips,
		penalties,
		rewards,
	)
	return err
}
