package domain

import (
	"fmt"
	"math"
)

// RideTier identifies the fare policy of a ride.
type RideTier string

const (
	RideTierBase     RideTier = "BASE"
	RideTierStandard RideTier = "STANDARD"
	RideTierPremium  RideTier = "PREMIUM"
)

// Fare policy constants, in dollars.
const (
	baseMinimumFare = 2.0
	basePerMile     = 1.0

	standardMinimumFare = 3.0
	standardPerMile     = 1.5
	standardBookingFee  = 1.0

	premiumMinimumFare = 10.0
	premiumPerMile     = 2.5
	premiumSurcharge   = 2.0

	// DefaultPremiumMultiplier scales the distance component of a premium fare
	// when no multiplier is given.
	DefaultPremiumMultiplier = 2.0
)

// Ride is a single trip with fixed endpoints and distance.
// Rides are immutable once created and are shared by pointer.
type Ride interface {
	ID() int64
	Pickup() string
	Dropoff() string
	DistanceMiles() float64
	Tier() RideTier

	// Fare is recomputed on every call and never stored.
	Fare() float64

	// Describe returns a one-line human readable summary of the ride.
	Describe() string
}

// Ensure all variants implement Ride.
var (
	_ Ride = (*BaseRide)(nil)
	_ Ride = (*StandardRide)(nil)
	_ Ride = (*PremiumRide)(nil)
)

// rideInfo holds the fields every variant shares.
type rideInfo struct {
	id            int64
	pickup        string
	dropoff       string
	distanceMiles float64
}

func (r rideInfo) ID() int64              { return r.id }
func (r rideInfo) Pickup() string         { return r.pickup }
func (r rideInfo) Dropoff() string        { return r.dropoff }
func (r rideInfo) DistanceMiles() float64 { return r.distanceMiles }

// details formats the shared part of Describe.
func (r rideInfo) details(fare float64) string {
	return fmt.Sprintf("Ride #%d | From: %s -> To: %s | Distance: %.2f miles | Fare: $%.2f",
		r.id, r.pickup, r.dropoff, r.distanceMiles, fare)
}

// BaseRide charges a flat per-mile rate with a $2.00 minimum.
type BaseRide struct {
	rideInfo
}

// Tier returns RideTierBase.
func (r *BaseRide) Tier() RideTier { return RideTierBase }

// Fare returns max(2.00, 1.00 * distance).
func (r *BaseRide) Fare() float64 {
	return math.Max(baseMinimumFare, basePerMile*r.distanceMiles)
}

// Describe returns the ride summary without a tier prefix.
func (r *BaseRide) Describe() string {
	return r.details(r.Fare())
}

// StandardRide adds a booking fee to a per-mile rate.
type StandardRide struct {
	rideInfo
}

// Tier returns RideTierStandard.
func (r *StandardRide) Tier() RideTier { return RideTierStandard }

// Fare returns max(3.00, 1.50 * distance + 1.00).
func (r *StandardRide) Fare() float64 {
	return math.Max(standardMinimumFare, standardPerMile*r.distanceMiles+standardBookingFee)
}

// Describe returns the ride summary prefixed with "[Standard]".
func (r *StandardRide) Describe() string {
	return "[Standard] " + r.details(r.Fare())
}

// PremiumRide scales its distance component by a per-ride luxury multiplier.
type PremiumRide struct {
	rideInfo
	multiplier float64
}

// Tier returns RideTierPremium.
func (r *PremiumRide) Tier() RideTier { return RideTierPremium }

// Multiplier returns the luxury multiplier fixed at creation.
func (r *PremiumRide) Multiplier() float64 { return r.multiplier }

// Fare returns max(10.00, 2.50 * distance * multiplier + 2.00).
func (r *PremiumRide) Fare() float64 {
	return math.Max(premiumMinimumFare, premiumPerMile*r.distanceMiles*r.multiplier+premiumSurcharge)
}

// Describe returns the ride summary prefixed with "[Premium]".
func (r *PremiumRide) Describe() string {
	return "[Premium]  " + r.details(r.Fare())
}

// present reports whether r refers to an actual ride.
// A typed nil pointer stored in the interface counts as absent.
func present(r Ride) bool {
	switch v := r.(type) {
	case nil:
		return false
	case *BaseRide:
		return v != nil
	case *StandardRide:
		return v != nil
	case *PremiumRide:
		return v != nil
	default:
		return true
	}
}
