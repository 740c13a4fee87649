package repository

import (
	"context"

	"rideshare/internal/domain"
)

// DriverRepository defines the lookup operations for drivers.
type DriverRepository interface {
	// Create adds a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)

	// GetAll retrieves all drivers ordered by ID.
	GetAll(ctx context.Context) ([]*domain.Driver, error)
}
