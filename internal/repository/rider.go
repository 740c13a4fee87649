package repository

import (
	"context"

	"rideshare/internal/domain"
)

// RiderRepository defines the lookup operations for riders.
type RiderRepository interface {
	// Create adds a new rider.
	Create(ctx context.Context, rider *domain.Rider) error

	// GetByID retrieves a rider by ID.
	GetByID(ctx context.Context, id int64) (*domain.Rider, error)

	// GetAll retrieves all riders ordered by ID.
	GetAll(ctx context.Context) ([]*domain.Rider, error)
}
