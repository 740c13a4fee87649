// Command demo builds a handful of drivers, riders and rides in memory and
// prints their summaries to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"rideshare/internal/domain"
)

func main() {
	logger := zap.NewExample()
	defer func() { _ = logger.Sync() }()

	if err := run(os.Stdout); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(w io.Writer) error {
	fmt.Fprint(w, "=== Ride Sharing System Demo ===\n\n")

	driver1 := domain.NewDriver(101, "Aisha Khan", 4.92)
	driver2 := domain.NewDriver(102, "Carlos Mendez", 4.80)

	rider1 := domain.NewRider(201, "Nabiha S.")
	rider2 := domain.NewRider(202, "Sam Lee")

	rides := domain.NewRideFactory(domain.NewIDSequence())

	r1, err := rides.NewStandard("Downtown", "Airport", 18.4)
	if err != nil {
		return err
	}
	r2, err := rides.NewPremium("Mall", "University", 7.2, domain.WithMultiplier(1.5))
	if err != nil {
		return err
	}
	r3, err := rides.NewStandard("Home", "Office", 4.5)
	if err != nil {
		return err
	}
	r4, err := rides.NewPremium("Hotel", "Convention Center", 12.0)
	if err != nil {
		return err
	}

	allRides := []domain.Ride{r1, r2, r3, r4}

	fmt.Fprintln(w, "All rides (polymorphic display):")
	for _, r := range allRides {
		fmt.Fprintln(w, r.Describe())
	}
	fmt.Fprintln(w)

	driver1.AddRide(r1)
	driver1.AddRide(r3)
	driver2.AddRide(r2)
	driver2.AddRide(r4)

	rider1.RequestRide(r1)
	rider1.RequestRide(r2)
	rider2.RequestRide(r3)
	rider2.RequestRide(r4)

	fmt.Fprintln(w, "---- Driver Summaries ----")
	for _, d := range []*domain.Driver{driver1, driver2} {
		fmt.Fprintln(w, d.Summary())
	}

	fmt.Fprintln(w, "---- Rider Histories ----")
	for _, r := range []*domain.Rider{rider1, rider2} {
		fmt.Fprintln(w, r.History())
	}

	fmt.Fprintln(w, domain.RevenueLine(domain.TotalRevenue(allRides)))
	fmt.Fprint(w, "\n=== End Demo ===\n")
	return nil
}
