package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rideshare/internal/domain"
	"rideshare/internal/repository/memory"
)

// fixture wires every service over fresh in-memory repositories.
type fixture struct {
	rides   *RideService
	drivers *DriverService
	riders  *RiderService
	reports *ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()
	factory := domain.NewRideFactory(domain.NewIDSequence())

	return &fixture{
		rides:   NewRideService(rideRepo, factory, nil),
		drivers: NewDriverService(driverRepo, rideRepo, nil),
		riders:  NewRiderService(riderRepo, rideRepo, nil),
		reports: NewReportService(rideRepo, driverRepo, riderRepo),
	}
}

func (f *fixture) createRide(t *testing.T, tier domain.RideTier, pickup, dropoff string, miles float64, multiplier ...float64) domain.Ride {
	t.Helper()
	req := CreateRideRequest{Tier: tier, Pickup: pickup, Dropoff: dropoff, DistanceMiles: miles}
	if len(multiplier) > 0 {
		req.Multiplier = &multiplier[0]
	}
	ride, err := f.rides.CreateRide(context.Background(), req)
	require.NoError(t, err)
	return ride
}

// seedDemo creates the drivers, riders and rides of the demo program.
func (f *fixture) seedDemo(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	r1 := f.createRide(t, domain.RideTierStandard, "Downtown", "Airport", 18.4)
	r2 := f.createRide(t, domain.RideTierPremium, "Mall", "University", 7.2, 1.5)
	r3 := f.createRide(t, domain.RideTierStandard, "Home", "Office", 4.5)
	r4 := f.createRide(t, domain.RideTierPremium, "Hotel", "Convention Center", 12.0)

	r492, r480 := 4.92, 4.80
	_, err := f.drivers.Register(ctx, RegisterDriverRequest{ID: 101, Name: "Aisha Khan", Rating: &r492})
	require.NoError(t, err)
	_, err = f.drivers.Register(ctx, RegisterDriverRequest{ID: 102, Name: "Carlos Mendez", Rating: &r480})
	require.NoError(t, err)
	_, err = f.riders.Register(ctx, 201, "Nabiha S.")
	require.NoError(t, err)
	_, err = f.riders.Register(ctx, 202, "Sam Lee")
	require.NoError(t, err)

	for _, a := range []struct{ driver, ride int64 }{{101, r1.ID()}, {101, r3.ID()}, {102, r2.ID()}, {102, r4.ID()}} {
		_, err := f.drivers.AssignRide(ctx, a.driver, a.ride)
		require.NoError(t, err)
	}
	for _, a := range []struct{ rider, ride int64 }{{201, r1.ID()}, {201, r2.ID()}, {202, r3.ID()}, {202, r4.ID()}} {
		_, err := f.riders.RequestRide(ctx, a.rider, a.ride)
		require.NoError(t, err)
	}
}
