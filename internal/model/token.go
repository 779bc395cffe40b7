package model

import "github.com/google/uuid"

// TokenManager signs and verifies session cookie tokens. The token only
// names a session; validity is decided against the SessionStore row.
type TokenManager interface {
	GenerateSessionToken(sessionID uuid.UUID, username string) (string, error)
	ParseSessionToken(token string) (sessionID uuid.UUID, username string, err error)
}
