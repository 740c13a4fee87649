package repository

import (
	"context"

	"rideshare/internal/domain"
)

// RideRepository is the registry of every ride created in the process.
type RideRepository interface {
	// Create stores a new ride.
	Create(ctx context.Context, ride domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id int64) (domain.Ride, error)

	// GetAll retrieves all rides ordered by ID.
	GetAll(ctx context.Context) ([]domain.Ride, error)
}
