package memory

import (
	"context"
	"sort"
	"sync"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// DriverRepository is an in-memory implementation of repository.DriverRepository.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int64]*domain.Driver
}

// NewDriverRepository creates a new in-memory driver repository.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[int64]*domain.Driver),
	}
}

// Create adds a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[driver.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.drivers[driver.ID] = driver
	return nil
}

// GetByID retrieves a driver by ID. The returned driver is the stored one,
// not a copy, so ride assignments made through it are kept.
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	driver, ok := r.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return driver, nil
}

// GetAll retrieves all drivers ordered by ID.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

var _ repository.DriverRepository = (*DriverRepository)(nil)
