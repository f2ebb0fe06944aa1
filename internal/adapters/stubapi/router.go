package stubapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wires the stub's routes. Registration, login and the listing
// endpoints are public; tickets require a bearer token, matching what
// the real backend enforces.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/user", s.handleRegister)
	r.Post("/user/auth", s.handleLogin)
	r.Get("/trip/date", s.handleTripsByDate)
	r.Get("/trip/date/from", s.handleTripsByDateFrom)
	r.Get("/car-type", s.handleCarTypes)
	r.Get("/car-type/{id}", s.handleCarTypeByID)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/tickets/buy", s.handleBuyTicket)
		r.Get("/tickets", s.handleListTickets)
	})

	return r
}
