package postgre

const schema = `
CREATE TABLE IF NOT EXISTS drivers (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL DEFAULT '',
	phone               TEXT NOT NULL DEFAULT '',
	language_preference TEXT NOT NULL DEFAULT 'hi',
	vehicle             JSONB NOT NULL DEFAULT '{}'::jsonb,
	emergency_contact   JSONB,
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS daily_earnings (
	driver_id       TEXT NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
	day             DATE NOT NULL,
	total_earnings  DOUBLE PRECISION NOT NULL DEFAULT 0,
	expenses        DOUBLE PRECISION NOT NULL DEFAULT 0,
	net_earnings    DOUBLE PRECISION NOT NULL DEFAULT 0,
	completed_trips INTEGER NOT NULL DEFAULT 0,
	penalties       JSONB NOT NULL DEFAULT '{}'::jsonb,
	rewards         JSONB NOT NULL DEFAULT '{}'::jsonb,
	PRIMARY KEY (driver_id, day)
);
`

const (
	querySelectDriver = `
SELECT id, name, phone, language_preference, vehicle, emergency_contact
FROM drivers
WHERE id = $1`

	querySelectEarnings = `
SELECT day, total_earnings, expenses, net_earnings, completed_trips, penalties, rewards
FROM daily_earnings
WHERE driver_id = $1`

	queryUpsertDriver = `
INSERT INTO drivers (id, name, phone, language_preference, vehicle, emergency_contact, updated_at)
VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, now())
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	phone = EXCLUDED.phone,
	language_preference = EXCLUDED.language_preference,
	vehicle = EXCLUDED.vehicle,
	emergency_contact = EXCLUDED.emergency_contact,
	updated_at = now()`

	queryDeleteEarnings = `DELETE FROM daily_earnings WHERE driver_id = $1`

	queryUpsertEarnings = `
INSERT INTO daily_earnings (driver_id, day, total_earnings, expenses, net_earnings, completed_trips, penalties, rewards)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb)
ON CONFLICT (driver_id, day) DO UPDATE SET
	total_earnings = EXCLUDED.total_earnings,
	expenses = EXCLUDED.expenses,
	net_earnings = EXCLUDED.net_earnings,
	completed_trips = EXCLUDED.completed_trips,
	penalties = EXCLUDED.penalties,
	rewards = EXCLUDED.rewards`

	queryLockDriver = `SELECT 1 FROM drivers WHERE id = $1 FOR UPDATE`
)
