package service

import (
	"context"

	"go.uber.org/zap"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// RiderService handles rider registration and ride requests.
type RiderService struct {
	riderRepo repository.RiderRepository
	rideRepo  repository.RideRepository
	logger    *zap.Logger
}

// NewRiderService creates a new RiderService.
func NewRiderService(
	riderRepo repository.RiderRepository,
	rideRepo repository.RideRepository,
	logger *zap.Logger,
) *RiderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiderService{
		riderRepo: riderRepo,
		rideRepo:  rideRepo,
		logger:    logger,
	}
}

// Register adds a new rider.
func (s *RiderService) Register(ctx context.Context, riderID int64, name string) (*domain.Rider, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	if name == "" {
		return nil, ErrInvalidName
	}

	rider := domain.NewRider(riderID, name)
	if err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, err
	}

	s.logger.Info("rider registered", zap.Int64("rider_id", riderID), zap.String("name", name))
	return rider, nil
}

// GetRider retrieves a rider by ID.
func (s *RiderService) GetRider(ctx context.Context, riderID int64) (*domain.Rider, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	return s.riderRepo.GetByID(ctx, riderID)
}

// RequestRide appends a registered ride to the rider's history.
func (s *RiderService) RequestRide(ctx context.Context, riderID, rideID int64) (*domain.Rider, error) {
	rider, err := s.GetRider(ctx, riderID)
	if err != nil {
		return nil, err
	}

	if rideID <= 0 {
		return nil, ErrInvalidRideID
	}
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	rider.RequestRide(ride)

	s.logger.Info("ride requested", zap.Int64("rider_id", riderID), zap.Int64("ride_id", rideID))
	return rider, nil
}

// History returns the rider's printable ride history.
func (s *RiderService) History(ctx context.Context, riderID int64) (string, error) {
	rider, err := s.GetRider(ctx, riderID)
	if err != nil {
		return "", err
	}
	return rider.History(), nil
}
