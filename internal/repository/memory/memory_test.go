package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

func TestRideRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository()
	f := domain.NewRideFactory(domain.NewIDSequence())

	r1, _ := f.NewStandard("A", "B", 1)
	r2, _ := f.NewPremium("C", "D", 2)
	require.NoError(t, repo.Create(ctx, r2))
	require.NoError(t, repo.Create(ctx, r1))

	got, err := repo.GetByID(ctx, r1.ID())
	require.NoError(t, err)
	assert.Same(t, r1, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID())
	assert.Equal(t, int64(2), all[1].ID())
}

func TestRideRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewRideRepository()
	r, _ := domain.NewRideFactory(domain.NewIDSequence()).NewBase("A", "B", 1)

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Create(ctx, r))
	assert.ErrorIs(t, repo.Create(ctx, r), repository.ErrAlreadyExists)
}

func TestDriverRepository_ReturnsStoredDriver(t *testing.T) {
	ctx := context.Background()
	repo := NewDriverRepository()
	r, _ := domain.NewRideFactory(domain.NewIDSequence()).NewBase("A", "B", 4)

	require.NoError(t, repo.Create(ctx, domain.NewDriver(102, "Carlos Mendez", 4.8)))
	require.NoError(t, repo.Create(ctx, domain.NewDriver(101, "Aisha Khan", 4.92)))
	assert.ErrorIs(t, repo.Create(ctx, domain.NewDriver(101, "Again", 1)), repository.ErrAlreadyExists)

	d, err := repo.GetByID(ctx, 101)
	require.NoError(t, err)
	d.AddRide(r)

	again, err := repo.GetByID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, again.AssignedCount())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(101), all[0].ID)

	_, err = repo.GetByID(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRiderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRiderRepository()

	require.NoError(t, repo.Create(ctx, domain.NewRider(202, "Sam Lee")))
	require.NoError(t, repo.Create(ctx, domain.NewRider(201, "Nabiha S.")))
	assert.ErrorIs(t, repo.Create(ctx, domain.NewRider(201, "Dup")), repository.ErrAlreadyExists)

	rider, err := repo.GetByID(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", rider.Name)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(201), all[0].ID)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
