package trips

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/app/apperr"
	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

// Service lists scheduled crossings.
type Service struct {
	gw  gateway.Gateway
	log zerolog.Logger
}

func NewService(gw gateway.Gateway, log zerolog.Logger) *Service {
	return &Service{gw: gw, log: log}
}

type tripDTO struct {
	ID                   string    `json:"id"`
	From                 string    `json:"from"`
	To                   string    `json:"to"`
	TripDate             time.Time `json:"tripDate"`
	HumanCapacity        int       `json:"humanCapacity"`
	VehicleCapacity      int       `json:"vehicleCapacity"`
	HumanCapacityCount   int       `json:"humanCapacityCount"`
	VehicleCapacityCount int       `json:"vehicleCapacityCount"`
	TripStatus           string    `json:"tripStatus"`
	Price                float64   `json:"price"`
}

func (d tripDTO) toDomain() domain.Trip {
	return domain.Trip{
		ID:                   domain.TripID(d.ID),
		From:                 domain.Terminal(d.From),
		To:                   domain.Terminal(d.To),
		TripDate:             d.TripDate,
		HumanCapacity:        d.HumanCapacity,
		VehicleCapacity:      d.VehicleCapacity,
		HumanCapacityCount:   d.HumanCapacityCount,
		VehicleCapacityCount: d.VehicleCapacityCount,
		Status:               d.TripStatus,
		Price:                d.Price,
	}
}

// TripsByDate lists crossings for a date, optionally filtered by
// departure terminal, with sold-out crossings removed. The remote API
// returns raw capacity counters; filtering here centralizes the rule so
// no caller can ever offer a full crossing for purchase.
func (s *Service) TripsByDate(ctx context.Context, date types.Date, from *domain.Terminal) ([]domain.Trip, error) {
	q := url.Values{}
	q.Set("date", date.Format(types.DateFormat))

	path := "/trip/date"
	if from != nil {
		if !from.Valid() {
			return nil, apperr.Validation("select a valid departure terminal")
		}
		path = "/trip/date/from"
		q.Set("from", string(*from))
	}

	var dtos []tripDTO
	if err := s.gw.Do(ctx, http.MethodGet, path, q, nil, &dtos); err != nil {
		return nil, apperr.FromGateway(err, "could not load trips")
	}

	trips := make([]domain.Trip, 0, len(dtos))
	for _, d := range dtos {
		trips = append(trips, d.toDomain())
	}
	available := domain.FilterAvailable(trips)
	s.log.Debug().
		Str("date", date.Format(types.DateFormat)).
		Int("total", len(trips)).
		Int("available", len(available)).
		Msg("trips listed")
	return available, nil
}

// ReturnTrips lists the return leg of a round trip: the same listing,
// departing from the terminal opposite the outbound departure.
func (s *Service) ReturnTrips(ctx context.Context, date types.Date, outboundFrom domain.Terminal) ([]domain.Trip, error) {
	if !outboundFrom.Valid() {
		return nil, apperr.Validation("select a valid departure terminal")
	}
	from := outboundFrom.Opposite()
	return s.TripsByDate(ctx, date, &from)
}
