package domain

import (
	"fmt"
	"time"
)

// Ticket is a purchased fare. Tickets are created server-side on
// purchase; the client only lists them.
type Ticket struct {
	UserID   UserID
	TripID   TripID
	TripFrom Terminal
	TripTo   Terminal

	// CarType is the vehicle category label; nil for passenger-only fares.
	CarType *string

	Status string

	TripDate  time.Time
	CreatedAt time.Time
}

// CheckInCode is the scannable payload presented at boarding. It is
// generated entirely client-side from already-fetched ticket data.
func (t Ticket) CheckInCode() string {
	return fmt.Sprintf("ticket:%s|from:%s|to:%s|time:%s",
		t.TripID, t.TripFrom, t.TripTo, t.TripDate.Format("15:04"))
}

// TotalPrice is the amount charged for a crossing plus the optional
// vehicle surcharge. Passenger-only purchases pass nil.
func TotalPrice(trip Trip, carType *CarType) float64 {
	if carType == nil {
		return trip.Price
	}
	return trip.Price + carType.Cost
}
