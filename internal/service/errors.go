package service

import "errors"

var (
	// ErrInvalidRideID is returned when a ride ID is not positive.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidDriverID is returned when a driver ID is not positive.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidRiderID is returned when a rider ID is not positive.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidName is returned when a driver or rider name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrUnknownTier is returned when a ride tier is not BASE, STANDARD or PREMIUM.
	ErrUnknownTier = errors.New("unknown ride tier")
)
