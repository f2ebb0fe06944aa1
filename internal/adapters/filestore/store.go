package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/travessias-ma/balsa-client/internal/domain"
	"github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

// Store persists the session as a single JSON document on disk.
//
// The document carries the mobile client's three storage entries (token,
// authenticated flag, user profile) as fields of one file, so every Save
// or Clear is a single atomic rename and the token/flag co-invariant
// cannot be broken by a partial write. The mutex serializes
// read-modify-write sequences within the process.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

type document struct {
	Token         string        `json:"token"`
	Authenticated bool          `json:"authenticated"`
	User          *userDocument `json:"user,omitempty"`
}

type userDocument struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return domain.Session{}, err
	}
	if doc.Token == "" || !doc.Authenticated || doc.User == nil {
		return domain.Session{}, sessionstore.ErrNoSession
	}
	return domain.Session{
		Token: doc.Token,
		User: domain.User{
			ID:    domain.UserID(doc.User.ID),
			Email: doc.User.Email,
			Name:  doc.User.Name,
		},
	}, nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", err
	}
	return doc.Token, nil
}

func (s *Store) Authenticated(ctx context.Context) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, err
	}
	return doc.Token != "" && doc.Authenticated, nil
}

func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := document{
		Token:         sess.Token,
		Authenticated: true,
		User: &userDocument{
			ID:    string(sess.User.ID),
			Email: sess.User.Email,
			Name:  sess.User.Name,
		},
	}
	return s.write(doc)
}

func (s *Store) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session file: %w", err)
	}
	return nil
}

func (s *Store) read() (document, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("reading session file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		// A corrupt file reads as an empty store rather than wedging
		// every authenticated call; the next Save rewrites it whole.
		return document{}, nil
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("creating session temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("restricting session file mode: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}
