package domain

import (
	"fmt"
	"strings"
	"sync"
)

// Rider holds the rides one rider has requested. The list only grows.
type Rider struct {
	ID   int64
	Name string

	mu             sync.RWMutex
	requestedRides []Ride
}

// NewRider creates a new Rider with an empty ride history.
func NewRider(id int64, name string) *Rider {
	return &Rider{
		ID:   id,
		Name: name,
	}
}

// RequestRide appends ride to the rider's history.
func (r *Rider) RequestRide(ride Ride) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requestedRides = append(r.requestedRides, ride)
}

// RideCount returns the number of requested rides.
func (r *Rider) RideCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requestedRides)
}

// RequestedRides returns a copy of the ride history in request order.
func (r *Rider) RequestedRides() []Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rides := make([]Ride, len(r.requestedRides))
	copy(rides, r.requestedRides)
	return rides
}

// History renders the rider followed by each requested ride.
func (r *Rider) History() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Rider ID: %d | Name: %s | Ride history (%d):\n", r.ID, r.Name, len(r.requestedRides))
	writeDetails(&b, r.requestedRides)
	return b.String()
}
