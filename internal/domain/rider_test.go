package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRider_RequestRide(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r1, _ := f.NewStandard("Downtown", "Airport", 18.4)
	r2, _ := f.NewPremium("Mall", "University", 7.2, WithMultiplier(1.5))

	rider := NewRider(201, "Nabiha S.")
	rider.RequestRide(r1)
	rider.RequestRide(r2)
	rider.RequestRide(r1)

	rides := rider.RequestedRides()
	require.Len(t, rides, 3)
	assert.Same(t, r1, rides[0])
	assert.Same(t, r2, rides[1])
	assert.Same(t, r1, rides[2])
	assert.Equal(t, 3, rider.RideCount())
}

func TestRider_History(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r1, _ := f.NewStandard("Downtown", "Airport", 18.4)
	r2, _ := f.NewPremium("Mall", "University", 7.2, WithMultiplier(1.5))

	rider := NewRider(201, "Nabiha S.")
	rider.RequestRide(r1)
	rider.RequestRide(nil)
	rider.RequestRide(r2)

	want := "Rider ID: 201 | Name: Nabiha S. | Ride history (3):\n" +
		"[Standard] Ride #1 | From: Downtown -> To: Airport | Distance: 18.40 miles | Fare: $28.60\n" +
		"[Premium]  Ride #2 | From: Mall -> To: University | Distance: 7.20 miles | Fare: $29.00\n"
	assert.Equal(t, want, rider.History())
}

func TestRider_EmptyHistory(t *testing.T) {
	rider := NewRider(202, "Sam Lee")
	assert.Equal(t, "Rider ID: 202 | Name: Sam Lee | Ride history (0):\n", rider.History())
	assert.Empty(t, rider.RequestedRides())
}
