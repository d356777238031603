package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voicearchive/internal/common"
)

// SessionStore owns the current session and keeps it under the "session"
// key so a restarted CLI stays signed in.
type SessionStore struct {
	mu      sync.Mutex
	kv      kv.Repository
	current *models.Session
}

func NewSessionStore(repo kv.Repository) *SessionStore {
	return &SessionStore{kv: repo}
}

// Restore loads the persisted session, if there is one.
func (s *SessionStore) Restore(ctx context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, common.KeySession)
	if errors.Is(err, common.ErrorNotFound) {
		s.current = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.current = &sess
	return s.copyCurrent(), nil
}

// Begin makes sess the current session.
func (s *SessionStore) Begin(ctx context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.User.IsLoggedIn = true
	if err := s.save(ctx, &sess); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Update applies fn to the current session and persists it. Without a
// session it returns common.ErrUnauthenticated.
func (s *SessionStore) Update(ctx context.Context, fn func(*models.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return common.ErrUnauthenticated
	}
	next := *s.current
	fn(&next)
	if err := s.save(ctx, &next); err != nil {
		return err
	}
	s.current = &next
	return nil
}

// End forgets the current session.
func (s *SessionStore) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, common.KeySession); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// Current returns a copy of the active session or nil.
func (s *SessionStore) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyCurrent()
}

func (s *SessionStore) copyCurrent() *models.Session {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

func (s *SessionStore) save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, common.KeySession, data)
}
