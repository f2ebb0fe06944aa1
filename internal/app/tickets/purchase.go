package tickets

import (
	"context"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

// Quote is the priced summary shown before a purchase is submitted.
type Quote struct {
	Trip domain.Trip

	// CarType is nil for passenger-only quotes.
	CarType *domain.CarType

	// Total is the trip fare plus the vehicle surcharge, if any.
	Total float64
}

// VehicleOptions lists the categories offered in the purchase flow.
// Fetched fresh on every call; nothing is cached between openings.
func (s *Service) VehicleOptions(ctx context.Context) ([]domain.CarType, error) {
	return s.carTypes.All(ctx)
}

// QuoteFor prices a prospective purchase. A specified car type is
// resolved against the remote reference data so the surcharge shown is
// the one that will be charged.
func (s *Service) QuoteFor(ctx context.Context, trip domain.Trip, sel VehicleSelection) (Quote, error) {
	q := Quote{Trip: trip}
	if sel.IsSpecified() && !sel.IsNull() {
		ct, err := s.carTypes.ByID(ctx, sel.Value())
		if err != nil {
			return Quote{}, err
		}
		q.CarType = &ct
	}
	q.Total = domain.TotalPrice(trip, q.CarType)
	return q, nil
}
