package domain

import (
	"fmt"
	"math"
)

// RideFactory builds rides and assigns their IDs from a single IDSource.
type RideFactory struct {
	ids               IDSource
	premiumMultiplier float64
}

// NewRideFactory creates a new RideFactory drawing IDs from ids.
func NewRideFactory(ids IDSource) *RideFactory {
	return &RideFactory{
		ids:               ids,
		premiumMultiplier: DefaultPremiumMultiplier,
	}
}

// WithPremiumMultiplier returns a factory sharing the same IDSource whose
// premium rides default to multiplier m.
func (f *RideFactory) WithPremiumMultiplier(m float64) (*RideFactory, error) {
	if err := validateMultiplier(m); err != nil {
		return nil, err
	}
	return &RideFactory{ids: f.ids, premiumMultiplier: m}, nil
}

// PremiumOption configures a premium ride at creation.
type PremiumOption func(*premiumOptions)

type premiumOptions struct {
	multiplier float64
}

// WithMultiplier sets the luxury multiplier of a premium ride.
func WithMultiplier(m float64) PremiumOption {
	return func(o *premiumOptions) {
		o.multiplier = m
	}
}

// NewBase creates a BaseRide.
func (f *RideFactory) NewBase(pickup, dropoff string, distanceMiles float64) (*BaseRide, error) {
	if err := validateTrip(pickup, dropoff, distanceMiles); err != nil {
		return nil, err
	}
	return &BaseRide{rideInfo: f.info(pickup, dropoff, distanceMiles)}, nil
}

// NewStandard creates a StandardRide.
func (f *RideFactory) NewStandard(pickup, dropoff string, distanceMiles float64) (*StandardRide, error) {
	if err := validateTrip(pickup, dropoff, distanceMiles); err != nil {
		return nil, err
	}
	return &StandardRide{rideInfo: f.info(pickup, dropoff, distanceMiles)}, nil
}

// NewPremium creates a PremiumRide. The multiplier defaults to the factory's
// premium multiplier unless WithMultiplier is given.
func (f *RideFactory) NewPremium(pickup, dropoff string, distanceMiles float64, opts ...PremiumOption) (*PremiumRide, error) {
	o := premiumOptions{multiplier: f.premiumMultiplier}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateTrip(pickup, dropoff, distanceMiles); err != nil {
		return nil, err
	}
	if err := validateMultiplier(o.multiplier); err != nil {
		return nil, err
	}

	return &PremiumRide{
		rideInfo:   f.info(pickup, dropoff, distanceMiles),
		multiplier: o.multiplier,
	}, nil
}

// New creates a ride of the given tier. Premium options are ignored for
// other tiers.
func (f *RideFactory) New(tier RideTier, pickup, dropoff string, distanceMiles float64, opts ...PremiumOption) (Ride, error) {
	var (
		ride Ride
		err  error
	)
	switch tier {
	case RideTierBase:
		ride, err = f.NewBase(pickup, dropoff, distanceMiles)
	case RideTierStandard:
		ride, err = f.NewStandard(pickup, dropoff, distanceMiles)
	case RideTierPremium:
		ride, err = f.NewPremium(pickup, dropoff, distanceMiles, opts...)
	default:
		err = fmt.Errorf("%w: unknown ride tier %q", ErrInvalidArgument, tier)
	}
	if err != nil {
		// Avoid handing back a typed nil inside the interface.
		return nil, err
	}
	return ride, nil
}

// info takes the next ID. Call it only after validation so that a rejected
// ride never consumes an ID.
func (f *RideFactory) info(pickup, dropoff string, distanceMiles float64) rideInfo {
	return rideInfo{
		id:            f.ids.Next(),
		pickup:        pickup,
		dropoff:       dropoff,
		distanceMiles: distanceMiles,
	}
}

func validateTrip(pickup, dropoff string, distanceMiles float64) error {
	if pickup == "" {
		return fmt.Errorf("%w: pickup is empty", ErrInvalidArgument)
	}
	if dropoff == "" {
		return fmt.Errorf("%w: dropoff is empty", ErrInvalidArgument)
	}
	if math.IsNaN(distanceMiles) || math.IsInf(distanceMiles, 0) {
		return fmt.Errorf("%w: distance %v is not a finite number", ErrInvalidArgument, distanceMiles)
	}
	if distanceMiles < 0 {
		return fmt.Errorf("%w: distance %.2f is negative", ErrInvalidArgument, distanceMiles)
	}
	return nil
}

func validateMultiplier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		return fmt.Errorf("%w: multiplier %v must be a non-negative number", ErrInvalidArgument, m)
	}
	return nil
}
