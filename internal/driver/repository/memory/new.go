package memory

import (
	"sync"

	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/model"
	"porter-saathi/pkg/log"
)

type implRepository struct {
	mu      sync.RWMutex
	drivers map[string]model.Driver
	l       log.Logger
}

// New creates an in-memory driver Repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		drivers: make(map[string]model.Driver),
		l:       l,
	}
}
