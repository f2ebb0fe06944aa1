// Package stubapi is an in-memory rendition of the remote ticketing
// API, used by the dev binary and the end-to-end tests. It speaks the
// same wire format the client consumes and enforces the same
// server-side rules the client must cope with: credential checks,
// bearer auth, capacity rejection.
package stubapi

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/clock"
)

type account struct {
	ID       string
	Name     string
	Email    string
	CPF      string
	Password string
}

type tripRecord struct {
	ID                   string
	From                 string
	To                   string
	TripDate             time.Time
	HumanCapacity        int
	VehicleCapacity      int
	HumanCapacityCount   int
	VehicleCapacityCount int
	TripStatus           string
	Price                float64
}

type carTypeRecord struct {
	ID      string
	CarType string
	Space   int
	Cost    float64
}

type ticketRecord struct {
	UserID    string
	TripID    string
	TripFrom  string
	TripTo    string
	CarType   *string
	Status    string
	TripDate  time.Time
	CreatedAt time.Time
}

// Server holds all state behind one mutex. Capacity accounting is
// naive on purpose: one human slot per ticket, one vehicle slot when a
// car type is attached.
type Server struct {
	clk clock.Clock
	log zerolog.Logger

	mu       sync.Mutex
	users    map[string]account // keyed by email
	sessions map[string]string  // token -> user id
	trips    map[string]*tripRecord
	carTypes map[string]carTypeRecord
	tickets  []ticketRecord
}

func NewServer(clk clock.Clock, log zerolog.Logger) *Server {
	return &Server{
		clk:      clk,
		log:      log,
		users:    make(map[string]account),
		sessions: make(map[string]string),
		trips:    make(map[string]*tripRecord),
		carTypes: make(map[string]carTypeRecord),
	}
}

// AddTrip seeds a crossing and returns its id.
func (s *Server) AddTrip(t domain.Trip) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := string(t.ID)
	if id == "" {
		id = uuid.NewString()
	}
	status := t.Status
	if status == "" {
		status = "SCHEDULED"
	}
	s.trips[id] = &tripRecord{
		ID:                   id,
		From:                 string(t.From),
		To:                   string(t.To),
		TripDate:             t.TripDate,
		HumanCapacity:        t.HumanCapacity,
		VehicleCapacity:      t.VehicleCapacity,
		HumanCapacityCount:   t.HumanCapacityCount,
		VehicleCapacityCount: t.VehicleCapacityCount,
		TripStatus:           status,
		Price:                t.Price,
	}
	return id
}

// AddCarType seeds a vehicle category and returns its id.
func (s *Server) AddCarType(ct domain.CarType) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := string(ct.ID)
	if id == "" {
		id = uuid.NewString()
	}
	s.carTypes[id] = carTypeRecord{ID: id, CarType: ct.Label, Space: ct.Space, Cost: ct.Cost}
	return id
}

// RevokeToken drops a session so the next authenticated call gets 401.
func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SeedDefaults loads the standard local fixture: both directions of
// the crossing on the given date plus the usual vehicle categories.
func (s *Server) SeedDefaults(date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for hour := 7; hour <= 17; hour += 5 {
		s.AddTrip(domain.Trip{
			From:            domain.TerminalPontaDaEspera,
			To:              domain.TerminalCujupe,
			TripDate:        day.Add(time.Duration(hour) * time.Hour),
			HumanCapacity:   120,
			VehicleCapacity: 30,
			Price:           20.0,
		})
		s.AddTrip(domain.Trip{
			From:            domain.TerminalCujupe,
			To:              domain.TerminalPontaDaEspera,
			TripDate:        day.Add(time.Duration(hour)*time.Hour + 90*time.Minute),
			HumanCapacity:   120,
			VehicleCapacity: 30,
			Price:           20.0,
		})
	}
	// Fixed ids keep repeated seeding idempotent for the categories.
	s.AddCarType(domain.CarType{ID: "carro", Label: "Carro", Space: 1, Cost: 15.0})
	s.AddCarType(domain.CarType{ID: "moto", Label: "Moto", Space: 1, Cost: 7.5})
	s.AddCarType(domain.CarType{ID: "caminhao", Label: "Caminhão", Space: 2, Cost: 40.0})
}
