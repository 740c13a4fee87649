package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// RideService creates rides and keeps them in the ride registry.
type RideService struct {
	rideRepo repository.RideRepository
	factory  *domain.RideFactory
	logger   *zap.Logger
}

// NewRideService creates a new RideService.
func NewRideService(
	rideRepo repository.RideRepository,
	factory *domain.RideFactory,
	logger *zap.Logger,
) *RideService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RideService{
		rideRepo: rideRepo,
		factory:  factory,
		logger:   logger,
	}
}

// CreateRideRequest contains the parameters for creating a ride.
type CreateRideRequest struct {
	Tier          domain.RideTier
	Pickup        string
	Dropoff       string
	DistanceMiles float64
	Multiplier    *float64 // Optional, premium only: nil means the factory default
}

// CreateRide builds a ride of the requested tier and registers it.
func (s *RideService) CreateRide(ctx context.Context, req CreateRideRequest) (domain.Ride, error) {
	var opts []domain.PremiumOption
	if req.Multiplier != nil {
		opts = append(opts, domain.WithMultiplier(*req.Multiplier))
	}

	ride, err := s.factory.New(req.Tier, req.Pickup, req.Dropoff, req.DistanceMiles, opts...)
	if err != nil {
		s.logger.Warn("ride rejected",
			zap.String("tier", string(req.Tier)),
			zap.Float64("distance_miles", req.DistanceMiles),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.logger.Info("ride created",
		zap.Int64("ride_id", ride.ID()),
		zap.String("tier", string(ride.Tier())),
		zap.Float64("fare", ride.Fare()),
	)
	return ride, nil
}

// GetRide retrieves a ride from the registry.
func (s *RideService) GetRide(ctx context.Context, rideID int64) (domain.Ride, error) {
	if rideID <= 0 {
		return nil, ErrInvalidRideID
	}
	return s.rideRepo.GetByID(ctx, rideID)
}

// ListRides returns every registered ride ordered by ID.
func (s *RideService) ListRides(ctx context.Context) ([]domain.Ride, error) {
	return s.rideRepo.GetAll(ctx)
}

// ParseTier validates a tier name. Matching is case-insensitive and an empty
// name defaults to STANDARD.
func ParseTier(tier string) (domain.RideTier, error) {
	switch t := domain.RideTier(strings.ToUpper(strings.TrimSpace(tier))); t {
	case domain.RideTierBase, domain.RideTierStandard, domain.RideTierPremium:
		return t, nil
	case "":
		return domain.RideTierStandard, nil
	default:
		return "", ErrUnknownTier
	}
}
