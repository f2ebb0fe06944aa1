package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/app/apperr"
	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
	"github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

// Service wraps the authentication endpoints and owns the write side of
// the session store.
type Service struct {
	gw    gateway.Gateway
	store sessionstore.Store
	log   zerolog.Logger
}

func NewService(gw gateway.Gateway, store sessionstore.Store, log zerolog.Logger) *Service {
	return &Service{gw: gw, store: store, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token   string  `json:"token"`
	UserDto userDTO `json:"userDto"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Login authenticates the rider and persists the session. On success
// the token, the authenticated flag and the profile are stored in one
// write.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if !domain.ValidEmail(creds.Email) {
		return domain.Session{}, apperr.Validation("enter a valid email address")
	}
	if creds.Password == "" {
		return domain.Session{}, apperr.Validation("enter your password")
	}

	var res loginResponse
	err := s.gw.Do(ctx, http.MethodPost, "/user/auth", nil, loginRequest{Email: creds.Email, Password: creds.Password}, &res)
	if err != nil {
		s.log.Debug().Err(err).Msg("login rejected")
		return domain.Session{}, apperr.FromGateway(err, "could not sign in, try again")
	}
	if res.Token == "" {
		return domain.Session{}, apperr.New(apperr.CodeServer, "server did not return a session token")
	}

	sess := domain.Session{
		Token: res.Token,
		User: domain.User{
			ID:    domain.UserID(res.UserDto.ID),
			Email: res.UserDto.Email,
			Name:  res.UserDto.Name,
		},
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return domain.Session{}, apperr.Wrap(apperr.CodeStorage, "could not save your session", err)
	}
	s.log.Info().Str("user", string(sess.User.ID)).Msg("signed in")
	return sess, nil
}

// Register creates a rider account. All four fields are mandatory; the
// CPF is stripped to digits before transmission. Registration does not
// sign the rider in.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if err := validateRegistration(reg); err != nil {
		return domain.User{}, err
	}

	req := registerRequest{
		Name:     reg.Name,
		Email:    reg.Email,
		CPF:      domain.FormatCPF(reg.CPF),
		Password: reg.Password,
	}
	var res registerResponse
	if err := s.gw.Do(ctx, http.MethodPost, "/user", nil, req, &res); err != nil {
		return domain.User{}, apperr.FromGateway(err, "could not create your account, try again")
	}
	if res.ID == "" || res.Email == "" {
		return domain.User{}, apperr.New(apperr.CodeServer, "server did not return the created account")
	}
	return domain.User{ID: domain.UserID(res.ID), Email: res.Email, Name: reg.Name}, nil
}

// Logout clears the stored session. There is no remote call; the token
// simply stops being presented.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return apperr.Wrap(apperr.CodeStorage, "could not clear your session", err)
	}
	s.log.Info().Msg("signed out")
	return nil
}

// IsAuthenticated reports the stored session state. Store read failures
// read as unauthenticated rather than erroring the caller out.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	ok, err := s.store.Authenticated(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("checking stored session")
		return false
	}
	return ok
}

// CurrentUser returns the cached profile of the stored session.
// sessionstore.ErrNoSession when nobody is signed in.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return sess.User, nil
}

func validateRegistration(reg domain.Registration) error {
	if reg.Name == "" || reg.Email == "" || reg.CPF == "" || reg.Password == "" {
		return apperr.Validation("fill in name, email, CPF and password")
	}
	if !domain.ValidEmail(reg.Email) {
		return apperr.Validation("enter a valid email address")
	}
	if !domain.ValidCPF(reg.CPF) {
		return apperr.Validation("enter a valid CPF (11 digits)")
	}
	if len(reg.Password) < domain.MinPasswordLen {
		return apperr.Validation("password must have at least 6 characters")
	}
	return nil
}
