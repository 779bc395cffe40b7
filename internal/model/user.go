package model

import "context"

// CredentialStore resolves a username to its expected secret.
// Backed by read-only external configuration.
type CredentialStore interface {
	Resolve(ctx context.Context, username string) (secret string, err error)
}

// Identity is an authenticated username. It carries no other state;
// handlers receive it from the session middleware and never from the
// request body.
type Identity struct {
	Username string
}
