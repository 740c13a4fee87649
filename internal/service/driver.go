package service

import (
	"context"

	"go.uber.org/zap"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// DriverService handles driver registration and ride assignment.
type DriverService struct {
	driverRepo repository.DriverRepository
	rideRepo   repository.RideRepository
	logger     *zap.Logger
}

// NewDriverService creates a new DriverService.
func NewDriverService(
	driverRepo repository.DriverRepository,
	rideRepo repository.RideRepository,
	logger *zap.Logger,
) *DriverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DriverService{
		driverRepo: driverRepo,
		rideRepo:   rideRepo,
		logger:     logger,
	}
}

// RegisterDriverRequest contains the parameters for registering a driver.
type RegisterDriverRequest struct {
	ID     int64
	Name   string
	Rating *float64 // Optional: defaults to domain.DefaultDriverRating
}

// Register adds a new driver. IDs are supplied by the caller.
func (s *DriverService) Register(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if req.Name == "" {
		return nil, ErrInvalidName
	}

	rating := domain.DefaultDriverRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	driver := domain.NewDriver(req.ID, req.Name, rating)
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.Info("driver registered", zap.Int64("driver_id", driver.ID), zap.String("name", driver.Name))
	return driver, nil
}

// GetDriver retrieves a driver by ID.
func (s *DriverService) GetDriver(ctx context.Context, driverID int64) (*domain.Driver, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	return s.driverRepo.GetByID(ctx, driverID)
}

// AssignRide appends a registered ride to the driver's assigned rides.
// Assigning the same ride twice is allowed.
func (s *DriverService) AssignRide(ctx context.Context, driverID, rideID int64) (*domain.Driver, error) {
	driver, err := s.GetDriver(ctx, driverID)
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

	driver.AddRide(ride)

	s.logger.Info("ride assigned",
		zap.Int64("driver_id", driverID),
		zap.Int64("ride_id", rideID),
		zap.Int("assigned_count", driver.AssignedCount()),
	)
	return driver, nil
}

// ClearRides removes every assigned ride from the driver.
func (s *DriverService) ClearRides(ctx context.Context, driverID int64) (*domain.Driver, error) {
	driver, err := s.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	driver.ClearAssignedRides()

	s.logger.Info("assigned rides cleared", zap.Int64("driver_id", driverID))
	return driver, nil
}

// Earnings returns the driver's total earnings over the assigned rides.
func (s *DriverService) Earnings(ctx context.Context, driverID int64) (float64, error) {
	driver, err := s.GetDriver(ctx, driverID)
	if err != nil {
		return 0, err
	}
	return driver.TotalEarnings(), nil
}

// Summary returns the driver's printable summary.
func (s *DriverService) Summary(ctx context.Context, driverID int64) (string, error) {
	driver, err := s.GetDriver(ctx, driverID)
	if err != nil {
		return "", err
	}
	return driver.Summary(), nil
}
