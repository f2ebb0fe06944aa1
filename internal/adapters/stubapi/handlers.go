package stubapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

type registerIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		return
	}
	if in.Name == "" || in.Email == "" || in.CPF == "" || in.Password == "" {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "name, email, cpf and password are required")
		return
	}
	if !domain.ValidEmail(in.Email) {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "invalid email")
		return
	}
	if !domain.ValidCPF(in.CPF) {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "invalid cpf")
		return
	}
	if len(in.Password) < domain.MinPasswordLen {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "password too short")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[in.Email]; exists {
		writeError(w, r, http.StatusConflict, "CONFLICT", "email already registered")
		return
	}
	acc := account{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		CPF:      domain.FormatCPF(in.CPF),
		Password: in.Password,
	}
	s.users[in.Email] = acc
	s.log.Info().Str("user", acc.ID).Msg("account created")

	writeJSON(w, http.StatusCreated, map[string]string{"id": acc.ID, "email": acc.Email})
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[in.Email]
	if !ok || acc.Password != in.Password {
		writeError(w, r, http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid credentials")
		return
	}

	token := uuid.NewString()
	s.sessions[token] = acc.ID
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"userDto": map[string]string{
			"id":    acc.ID,
			"email": acc.Email,
			"name":  acc.Name,
		},
	})
}

type tripOut struct {
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

func tripToOut(t *tripRecord) tripOut {
	return tripOut{
		ID:                   t.ID,
		From:                 t.From,
		To:                   t.To,
		TripDate:             t.TripDate,
		HumanCapacity:        t.HumanCapacity,
		VehicleCapacity:      t.VehicleCapacity,
		HumanCapacityCount:   t.HumanCapacityCount,
		VehicleCapacityCount: t.VehicleCapacityCount,
		TripStatus:           t.TripStatus,
		Price:                t.Price,
	}
}

func (s *Server) tripsOn(day time.Time, from string) []tripOut {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]tripOut, 0)
	for _, t := range s.trips {
		y, m, d := t.TripDate.UTC().Date()
		wy, wm, wd := day.Date()
		if y != wy || m != wm || d != wd {
			continue
		}
		if from != "" && t.From != from {
			continue
		}
		out = append(out, tripToOut(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TripDate.Before(out[j].TripDate) })
	return out
}

func parseDateParam(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	day, err := time.Parse(types.DateFormat, raw)
	return day, err == nil
}

func (s *Server) handleTripsByDate(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDateParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "date must be YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, s.tripsOn(day, ""))
}

func (s *Server) handleTripsByDateFrom(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDateParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "date must be YYYY-MM-DD")
		return
	}
	from := r.URL.Query().Get("from")
	if !domain.Terminal(from).Valid() {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "unknown departure terminal")
		return
	}
	writeJSON(w, http.StatusOK, s.tripsOn(day, from))
}

type carTypeOut struct {
	ID      string  `json:"id"`
	CarType string  `json:"carType"`
	Space   int     `json:"space"`
	Cost    float64 `json:"cost"`
}

func (s *Server) handleCarTypes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]carTypeOut, 0, len(s.carTypes))
	for _, ct := range s.carTypes {
		out = append(out, carTypeOut(ct))
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CarType < out[j].CarType })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCarTypeByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	ct, ok := s.carTypes[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "car type not found")
		return
	}
	writeJSON(w, http.StatusOK, carTypeOut(ct))
}

type buyIn struct {
	TripID    string  `json:"tripId"`
	CarTypeID *string `json:"carTypeId"`
}

type ticketOut struct {
	UserID    string    `json:"userId"`
	TripID    string    `json:"tripId"`
	TripFrom  string    `json:"tripFrom"`
	TripTo    string    `json:"tripTo"`
	CarType   *string   `json:"carType"`
	Status    string    `json:"status"`
	TripDate  time.Time `json:"tripDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func ticketToOut(t ticketRecord) ticketOut {
	return ticketOut{
		UserID:    t.UserID,
		TripID:    t.TripID,
		TripFrom:  t.TripFrom,
		TripTo:    t.TripTo,
		CarType:   t.CarType,
		Status:    t.Status,
		TripDate:  t.TripDate,
		CreatedAt: t.CreatedAt,
	}
}

func (s *Server) handleBuyTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing subject")
		return
	}

	var in buyIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		return
	}
	if in.TripID == "" {
		writeError(w, r, http.StatusBadRequest, "VALIDATION", "tripId is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[in.TripID]
	if !ok {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "trip not found")
		return
	}

	var carLabel *string
	if in.CarTypeID != nil {
		ct, ok := s.carTypes[*in.CarTypeID]
		if !ok {
			writeError(w, r, http.StatusNotFound, "NOT_FOUND", "car type not found")
			return
		}
		carLabel = &ct.CarType
	}

	if trip.HumanCapacityCount >= trip.HumanCapacity {
		writeError(w, r, http.StatusConflict, "SOLD_OUT", "trip is sold out")
		return
	}
	if carLabel != nil && trip.VehicleCapacityCount >= trip.VehicleCapacity {
		writeError(w, r, http.StatusConflict, "SOLD_OUT", "no vehicle slots left on this trip")
		return
	}

	trip.HumanCapacityCount++
	if carLabel != nil {
		trip.VehicleCapacityCount++
	}

	ticket := ticketRecord{
		UserID:    userID,
		TripID:    trip.ID,
		TripFrom:  trip.From,
		TripTo:    trip.To,
		CarType:   carLabel,
		Status:    "CONFIRMED",
		TripDate:  trip.TripDate,
		CreatedAt: s.clk.Now(),
	}
	s.tickets = append(s.tickets, ticket)
	s.log.Info().Str("user", userID).Str("trip", trip.ID).Msg("ticket sold")

	writeJSON(w, http.StatusCreated, ticketToOut(ticket))
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing subject")
		return
	}

	s.mu.Lock()
	out := make([]ticketOut, 0)
	for _, t := range s.tickets {
		if t.UserID == userID {
			out = append(out, ticketToOut(t))
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}
