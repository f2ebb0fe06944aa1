package sessionstore

import (
	"context"
	"sync"

	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

// Store is an in-memory implementation of sessionstore.Store.
// It is safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	token         string
	authenticated bool
	user          domain.User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || !s.authenticated {
		return domain.Session{}, sessionstore.ErrNoSession
	}
	return domain.Session{Token: s.token, User: s.user}, nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *Store) Authenticated(ctx context.Context) (bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.authenticated, nil
}

func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = sess.Token
	s.authenticated = true
	s.user = sess.User
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.authenticated = false
	s.user = domain.User{}
	return nil
}
