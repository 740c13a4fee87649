package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

func TestDriverService_Register(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.drivers.Register(ctx, RegisterDriverRequest{ID: 101, Name: "Aisha Khan"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDriverRating, d.Rating)

	_, err = f.drivers.Register(ctx, RegisterDriverRequest{ID: 101, Name: "Again"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = f.drivers.Register(ctx, RegisterDriverRequest{ID: 0, Name: "Zero"})
	assert.ErrorIs(t, err, ErrInvalidDriverID)

	_, err = f.drivers.Register(ctx, RegisterDriverRequest{ID: 5})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestDriverService_AssignAndEarnings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedDemo(t)

	earnings, err := f.drivers.Earnings(ctx, 101)
	require.NoError(t, err)
	assert.InDelta(t, 36.35, earnings, 1e-9)

	earnings, err = f.drivers.Earnings(ctx, 102)
	require.NoError(t, err)
	assert.InDelta(t, 91.00, earnings, 1e-9)

	// Duplicates count.
	d, err := f.drivers.AssignRide(ctx, 101, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, d.AssignedCount())
}

func TestDriverService_AssignRideErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.drivers.Register(ctx, RegisterDriverRequest{ID: 1, Name: "A"})
	require.NoError(t, err)

	_, err = f.drivers.AssignRide(ctx, 2, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.drivers.AssignRide(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidRideID)

	_, err = f.drivers.AssignRide(ctx, 1, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.drivers.AssignRide(ctx, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidDriverID)
}

func TestDriverService_ClearRides(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedDemo(t)

	d, err := f.drivers.ClearRides(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 0, d.AssignedCount())

	earnings, err := f.drivers.Earnings(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 0.0, earnings)

	// The rides remain registered and still held by the rider.
	ride, err := f.rides.GetRide(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 28.60, ride.Fare(), 1e-9)

	history, err := f.riders.History(ctx, 201)
	require.NoError(t, err)
	assert.Contains(t, history, "Ride #1 |")
}

func TestDriverService_Summary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedDemo(t)

	summary, err := f.drivers.Summary(ctx, 102)
	require.NoError(t, err)
	assert.Contains(t, summary, "Driver ID: 102 | Name: Carlos Mendez | Rating: 4.80")
	assert.Contains(t, summary, "Assigned rides (2):")
	assert.Contains(t, summary, "Total earnings from assigned rides: $91.00")

	_, err = f.drivers.Summary(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
