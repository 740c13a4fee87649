package domain

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultDriverRating is used when a driver registers without a rating.
const DefaultDriverRating = 5.0

// Driver holds the rides assigned to one driver.
type Driver struct {
	ID     int64
	Name   string
	Rating float64 // conventionally 0.0 - 5.0, not enforced

	mu            sync.RWMutex
	assignedRides []Ride
}

// NewDriver creates a new Driver with no assigned rides.
func NewDriver(id int64, name string, rating float64) *Driver {
	return &Driver{
		ID:     id,
		Name:   name,
		Rating: rating,
	}
}

// AddRide appends ride to the assigned rides. Duplicates are kept.
func (d *Driver) AddRide(ride Ride) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assignedRides = append(d.assignedRides, ride)
}

// TotalEarnings sums the fares of the currently assigned rides.
// Absent rides are skipped.
func (d *Driver) TotalEarnings() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return TotalRevenue(d.assignedRides)
}

// AssignedCount returns the number of assigned rides, duplicates included.
func (d *Driver) AssignedCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.assignedRides)
}

// AssignedRides returns a copy of the assigned rides in insertion order.
func (d *Driver) AssignedRides() []Ride {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rides := make([]Ride, len(d.assignedRides))
	copy(rides, d.assignedRides)
	return rides
}

// ClearAssignedRides drops every assigned ride. The rides themselves and
// other holders of them are unaffected.
func (d *Driver) ClearAssignedRides() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assignedRides = nil
}

// Summary renders the driver, each assigned ride and the total earnings.
func (d *Driver) Summary() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Driver ID: %d | Name: %s | Rating: %.2f\n", d.ID, d.Name, d.Rating)
	fmt.Fprintf(&b, "Assigned rides (%d):\n", len(d.assignedRides))
	writeDetails(&b, d.assignedRides)
	fmt.Fprintf(&b, "Total earnings from assigned rides: %s\n", FormatMoney(TotalRevenue(d.assignedRides)))
	return b.String()
}
