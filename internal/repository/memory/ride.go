package memory

import (
	"context"
	"sort"
	"sync"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// RideRepository is an in-memory implementation of repository.RideRepository.
// Rides are stored by reference, so every holder sees the same ride.
type RideRepository struct {
	mu    sync.RWMutex
	rides map[int64]domain.Ride
}

// NewRideRepository creates a new in-memory ride repository.
func NewRideRepository() *RideRepository {
	return &RideRepository{
		rides: make(map[int64]domain.Ride),
	}
}

// Create stores a new ride.
func (r *RideRepository) Create(ctx context.Context, ride domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rides[ride.ID()]; ok {
		return repository.ErrAlreadyExists
	}
	r.rides[ride.ID()] = ride
	return nil
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ride, ok := r.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return ride, nil
}

// GetAll retrieves all rides ordered by ID.
func (r *RideRepository) GetAll(ctx context.Context) ([]domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		result = append(result, ride)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

var _ repository.RideRepository = (*RideRepository)(nil)
