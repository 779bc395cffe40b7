package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in memory. Sessions do not survive a
// restart, which matches the reference deployment.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]model.Session),
	}
}

func (s *SessionStore) Create(ctx context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return model.Session{}, model.ErrNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}
