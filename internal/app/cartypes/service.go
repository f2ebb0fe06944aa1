package cartypes

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/app/apperr"
	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

// Service reads vehicle-category reference data. Pure pass-throughs, no
// filtering and no caching: reopening the purchase flow fetches again.
type Service struct {
	gw  gateway.Gateway
	log zerolog.Logger
}

func NewService(gw gateway.Gateway, log zerolog.Logger) *Service {
	return &Service{gw: gw, log: log}
}

type carTypeDTO struct {
	ID      string  `json:"id"`
	CarType string  `json:"carType"`
	Space   int     `json:"space"`
	Cost    float64 `json:"cost"`
}

func (d carTypeDTO) toDomain() domain.CarType {
	return domain.CarType{
		ID:    domain.CarTypeID(d.ID),
		Label: d.CarType,
		Space: d.Space,
		Cost:  d.Cost,
	}
}

// All lists every vehicle category.
func (s *Service) All(ctx context.Context) ([]domain.CarType, error) {
	var dtos []carTypeDTO
	if err := s.gw.Do(ctx, http.MethodGet, "/car-type", nil, nil, &dtos); err != nil {
		return nil, apperr.FromGateway(err, "could not load vehicle categories")
	}
	out := make([]domain.CarType, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// ByID fetches one vehicle category.
func (s *Service) ByID(ctx context.Context, id domain.CarTypeID) (domain.CarType, error) {
	if id == "" {
		return domain.CarType{}, apperr.Validation("select a vehicle category")
	}
	var dto carTypeDTO
	if err := s.gw.Do(ctx, http.MethodGet, "/car-type/"+string(id), nil, nil, &dto); err != nil {
		return domain.CarType{}, apperr.FromGateway(err, "could not load the vehicle category")
	}
	return dto.toDomain(), nil
}
