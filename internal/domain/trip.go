package domain

import "time"

// Trip is one scheduled crossing between the two terminals. Trips are
// owned by the remote API; the client treats them as read-only
// snapshots and never mutates capacity counters locally.
type Trip struct {
	ID   TripID
	From Terminal
	To   Terminal

	TripDate time.Time

	HumanCapacity        int
	VehicleCapacity      int
	HumanCapacityCount   int
	VehicleCapacityCount int

	// Status is server-owned and opaque to the client.
	Status string

	// Price is the passenger fare in BRL.
	Price float64
}

// Available reports whether the trip may still be offered for purchase.
// A crossing full on either the passenger or the vehicle dimension is
// sold out.
func (t Trip) Available() bool {
	return t.HumanCapacityCount < t.HumanCapacity &&
		t.VehicleCapacityCount < t.VehicleCapacity
}

// FilterAvailable returns the trips that still have room on both
// capacity dimensions, preserving input order.
func FilterAvailable(trips []Trip) []Trip {
	out := make([]Trip, 0, len(trips))
	for _, t := range trips {
		if t.Available() {
			out = append(out, t)
		}
	}
	return out
}
