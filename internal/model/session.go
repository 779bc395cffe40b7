package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is the session lifetime used when configuration does
// not override it.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists server-side login sessions. The stored row is
// authoritative: a session token is only as good as the row it points to.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Session binds an opaque id to an authenticated username for a fixed TTL.
type Session struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its TTL at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
