package tickets

import (
	"context"
	"net/http"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/app/apperr"
	"github.com/travessias-ma/balsa-client/internal/app/cartypes"
	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

// Service purchases and lists tickets.
type Service struct {
	gw       gateway.Gateway
	carTypes *cartypes.Service
	log      zerolog.Logger
}

func NewService(gw gateway.Gateway, carTypes *cartypes.Service, log zerolog.Logger) *Service {
	return &Service{gw: gw, carTypes: carTypes, log: log}
}

type buyRequest struct {
	TripID    string  `json:"tripId"`
	CarTypeID *string `json:"carTypeId,omitempty"`
}

type ticketDTO struct {
	UserID   string `json:"userId"`
	TripID   string `json:"tripId"`
	TripFrom string `json:"tripFrom"`
	TripTo   string `json:"tripTo"`

	// CarType is `string|null` on the wire; null marks a
	// passenger-only fare.
	CarType nullable.Nullable[string] `json:"carType"`

	Status    string    `json:"status"`
	TripDate  time.Time `json:"tripDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d ticketDTO) toDomain() domain.Ticket {
	t := domain.Ticket{
		UserID:    domain.UserID(d.UserID),
		TripID:    domain.TripID(d.TripID),
		TripFrom:  domain.Terminal(d.TripFrom),
		TripTo:    domain.Terminal(d.TripTo),
		Status:    d.Status,
		TripDate:  d.TripDate,
		CreatedAt: d.CreatedAt,
	}
	if d.CarType.IsSpecified() && !d.CarType.IsNull() {
		if v, err := d.CarType.Get(); err == nil {
			t.CarType = &v
		}
	}
	return t
}

// Buy submits the purchase as one remote call. No local capacity check
// happens first: the remote system is authoritative and may reject the
// purchase (for example when another rider takes the last slot), and
// that rejection surfaces as a user-visible failure, never a retry.
func (s *Service) Buy(ctx context.Context, tripID domain.TripID, sel VehicleSelection) (domain.Ticket, error) {
	if tripID == "" {
		return domain.Ticket{}, apperr.Validation("select a trip")
	}
	if !sel.IsSpecified() {
		return domain.Ticket{}, apperr.Validation("choose passenger-only or a vehicle category")
	}

	req := buyRequest{TripID: string(tripID)}
	if !sel.IsNull() {
		id := string(sel.Value())
		req.CarTypeID = &id
	}

	var dto ticketDTO
	if err := s.gw.Do(ctx, http.MethodPost, "/tickets/buy", nil, req, &dto); err != nil {
		s.log.Debug().Str("trip", string(tripID)).Err(err).Msg("purchase rejected")
		return domain.Ticket{}, apperr.FromGateway(err, "could not complete the purchase")
	}

	s.log.Info().Str("trip", string(tripID)).Msg("ticket purchased")
	return dto.toDomain(), nil
}

// Mine lists the authenticated rider's tickets, unfiltered.
func (s *Service) Mine(ctx context.Context) ([]domain.Ticket, error) {
	var dtos []ticketDTO
	if err := s.gw.Do(ctx, http.MethodGet, "/tickets", nil, nil, &dtos); err != nil {
		return nil, apperr.FromGateway(err, "could not load your tickets")
	}
	out := make([]domain.Ticket, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}
