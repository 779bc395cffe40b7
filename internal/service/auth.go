package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// Auth owns the login/logout lifecycle and resolves requests to
// identities.
type Auth struct {
	credentials  model.CredentialStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	sessionTTL   time.Duration
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	credentials model.CredentialStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	if sessionTTL <= 0 {
		sessionTTL = model.DefaultSessionTTL
	}
	return &Auth{
		credentials:  credentials,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		sessionTTL:   sessionTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Login verifies the credentials and mints a new session. The comparison
// is exact (case-sensitive, no normalization); a wrong username and a
// wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: login attempt", "username", username)

	secret, err := a.credentials.Resolve(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to resolve credentials",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to resolve credentials: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(password)) != 1 {
		return "", model.ErrInvalidCredentials
	}

	now := a.now()
	session := model.Session{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	tokenString, err := a.tokenManager.GenerateSessionToken(session.ID, username)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"username", username,
		"session_id", session.ID)

	return tokenString, nil
}

// Authenticate resolves a session token to the identity it was issued
// for. Expired sessions are deleted on sight.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return model.Identity{}, model.ErrUnauthorized
	}

	sessionID, _, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return model.Identity{}, model.ErrUnauthorized
	}

	session, err := a.sessionStore.GetByID(ctx, sessionID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get session",
			"session_id", sessionID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(a.now()) {
		if err := a.sessionStore.Delete(ctx, session.ID); err != nil {
			a.logger.Error("Auth service: failed to delete expired session",
				"session_id", session.ID,
				"error", err.Error())
		}
		return model.Identity{}, model.ErrUnauthorized
	}

	return model.Identity{Username: session.Username}, nil
}

// Logout destroys the session named by the token. Unknown or malformed
// tokens are not an error: the session is gone either way.
func (a *Auth) Logout(ctx context.Context, tokenString string) error {
	sessionID, _, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return nil
	}

	if err := a.sessionStore.Delete(ctx, sessionID); err != nil {
		a.logger.Error("Auth service: failed to delete session",
			"session_id", sessionID,
			"error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}

	a.logger.Info("Auth service: logout", "session_id", sessionID)
	return nil
}
