package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_TotalEarnings(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r1, err := f.NewStandard("Downtown", "Airport", 18.4)
	require.NoError(t, err)
	r3, err := f.NewStandard("Home", "Office", 4.5)
	require.NoError(t, err)

	d := NewDriver(101, "Aisha Khan", 4.92)
	d.AddRide(r1)
	d.AddRide(r3)

	assert.InDelta(t, 7.75, r3.Fare(), fareDelta)
	assert.InDelta(t, 36.35, d.TotalEarnings(), fareDelta)
}

func TestDriver_EarningsOrderIndependent(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	a, _ := f.NewBase("A", "B", 5)
	b, _ := f.NewStandard("A", "B", 7.3)
	c, _ := f.NewPremium("A", "B", 2.2, WithMultiplier(1.7))

	forward := NewDriver(1, "Forward", 5)
	backward := NewDriver(2, "Backward", 5)
	for _, r := range []Ride{a, b, c} {
		forward.AddRide(r)
	}
	for _, r := range []Ride{c, b, a} {
		backward.AddRide(r)
	}

	assert.InDelta(t, a.Fare()+b.Fare()+c.Fare(), forward.TotalEarnings(), fareDelta)
	assert.InDelta(t, forward.TotalEarnings(), backward.TotalEarnings(), fareDelta)
}

func TestDriver_CountsDuplicates(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r, _ := f.NewStandard("A", "B", 4.5)

	d := NewDriver(1, "Dup", 5)
	d.AddRide(r)
	d.AddRide(r)
	d.AddRide(r)

	assert.Equal(t, 3, d.AssignedCount())
	assert.InDelta(t, 3*7.75, d.TotalEarnings(), fareDelta)
}

func TestDriver_ClearAssignedRides(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r, _ := f.NewPremium("Hotel", "Convention Center", 12.0)

	d := NewDriver(1, "Clear", 5)
	other := NewRider(9, "Other")
	d.AddRide(r)
	other.RequestRide(r)
	before := d.AssignedRides()

	d.ClearAssignedRides()

	assert.Equal(t, 0, d.AssignedCount())
	assert.Equal(t, 0.0, d.TotalEarnings())
	require.Len(t, before, 1)
	assert.Same(t, r, before[0])
	assert.InDelta(t, 62.0, before[0].Fare(), fareDelta)
	assert.Equal(t, 1, other.RideCount())

	d.AddRide(r)
	assert.Equal(t, 1, d.AssignedCount())
}

func TestDriver_SkipsAbsentRides(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r, _ := f.NewStandard("Downtown", "Airport", 18.4)
	var missing *StandardRide

	d := NewDriver(1, "Lenient", 4.5)
	d.AddRide(nil)
	d.AddRide(missing)
	d.AddRide(r)

	assert.Equal(t, 3, d.AssignedCount())
	assert.InDelta(t, 28.60, d.TotalEarnings(), fareDelta)
	assert.NotPanics(t, func() { _ = d.Summary() })
	assert.Equal(t, 1, strings.Count(d.Summary(), "Ride #"))
}

func TestDriver_AssignedRidesIsACopy(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r, _ := f.NewBase("A", "B", 3)

	d := NewDriver(1, "Copy", 5)
	d.AddRide(r)
	rides := d.AssignedRides()
	rides[0] = nil

	assert.InDelta(t, 3.0, d.TotalEarnings(), fareDelta)
}

func TestDriver_Summary(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r1, _ := f.NewStandard("Downtown", "Airport", 18.4)
	r2, _ := f.NewStandard("Home", "Office", 4.5)

	d := NewDriver(101, "Aisha Khan", 4.92)
	d.AddRide(r1)
	d.AddRide(r2)

	want := "Driver ID: 101 | Name: Aisha Khan | Rating: 4.92\n" +
		"Assigned rides (2):\n" +
		"[Standard] Ride #1 | From: Downtown -> To: Airport | Distance: 18.40 miles | Fare: $28.60\n" +
		"[Standard] Ride #2 | From: Home -> To: Office | Distance: 4.50 miles | Fare: $7.75\n" +
		"Total earnings from assigned rides: $36.35\n"
	assert.Equal(t, want, d.Summary())
}

func TestDriver_ConcurrentAdds(t *testing.T) {
	f := NewRideFactory(NewIDSequence())
	r, _ := f.NewBase("A", "B", 1)
	d := NewDriver(1, "Busy", 5)

	const workers, perWorker = 10, 100
	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				d.AddRide(r)
				_ = d.TotalEarnings()
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}

	assert.Equal(t, workers*perWorker, d.AssignedCount())
}
