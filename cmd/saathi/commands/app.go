package commands

import (
	"context"
	"fmt"
	"time"

	"porter-saathi/config"
	"porter-saathi/internal/assistant"
	"porter-saathi/internal/assistant/usecase"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/driver/repository/memory"
	"porter-saathi/internal/driver/repository/postgre"
	"porter-saathi/internal/knowledge"
	"porter-saathi/internal/model"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/datemath"
	"porter-saathi/pkg/log"
	"porter-saathi/pkg/postgres"
)

// app is the in-process assistant a command talks to.
type app struct {
	uc     assistant.UseCase
	router router.Router
	close  func()
}

func newLogger(opts *rootOptions) log.Logger {
	if !opts.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         "debug",
		Encoding:     "console",
		ColorEnabled: true,
	})
}

func loadKnowledge(cfg *config.Config) (*knowledge.Base, error) {
	if cfg.Assistant.KnowledgeFile == "" {
		return knowledge.Default(), nil
	}
	kb, err := knowledge.LoadFile(cfg.Assistant.KnowledgeFile)
	if err != nil {
		return nil, fmt.Errorf("load knowledge file: %w", err)
	}
	return kb, nil
}

// newApp wires the assistant from config. Emergencies are only logged; the
// CLI never reaches the queue or push sinks.
func newApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	l := newLogger(opts)

	dates, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}

	kb, err := loadKnowledge(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{close: func() {}}

	var repo repository.Repository
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.Connect(ctx, cfg.Store.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := postgre.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		repo = postgre.New(pool, l)
		a.close = pool.Close
	default:
		repo = memory.New(l)
	}

	// The memory store starts empty on every run, so it is always seeded.
	if cfg.Assistant.SeedSampleData || cfg.Store.Driver != config.StorePostgres {
		today := model.DateOf(time.Now().In(dates.Location()))
		if err := repository.Seed(ctx, repo, today); err != nil {
			a.close()
			return nil, fmt.Errorf("seed sample drivers: %w", err)
		}
	}

	a.router = router.New(l)
	a.uc = usecase.New(l, repo, a.router, kb, nil, usecase.Options{
		Dates:            dates,
		EmergencyTimeout: cfg.Emergency.Timeout,
		DefaultLanguage:  cfg.Assistant.DefaultLanguage,
	})
	return a, nil
}
