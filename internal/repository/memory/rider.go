package memory

import (
	"context"
	"sort"
	"sync"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// RiderRepository is an in-memory implementation of repository.RiderRepository.
type RiderRepository struct {
	mu     sync.RWMutex
	riders map[int64]*domain.Rider
}

// NewRiderRepository creates a new in-memory rider repository.
func NewRiderRepository() *RiderRepository {
	return &RiderRepository{
		riders: make(map[int64]*domain.Rider),
	}
}

// Create adds a new rider.
func (r *RiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.riders[rider.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.riders[rider.ID] = rider
	return nil
}

// GetByID retrieves a rider by ID.
func (r *RiderRepository) GetByID(ctx context.Context, id int64) (*domain.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rider, ok := r.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rider, nil
}

// GetAll retrieves all riders ordered by ID.
func (r *RiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Rider, 0, len(r.riders))
	for _, rd := range r.riders {
		result = append(result, rd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

var _ repository.RiderRepository = (*RiderRepository)(nil)
