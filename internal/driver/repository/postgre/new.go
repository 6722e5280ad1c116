package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"porter-saathi/internal/driver/repository"
	"porter-saathi/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a PostgreSQL-backed driver Repository.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("driver/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the driver tables when they do not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure driver schema: %w", err)
	}
	return nil
}

// scope returns a method-scoped prefix for log lines.
func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("driver/repository/postgre.%s", method)
}
