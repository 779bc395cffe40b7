package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on login mismatch without saying
	// which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a request carries no valid,
	// non-expired session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrChallengeNotFound is returned for submissions against unknown
	// challenge ids.
	ErrChallengeNotFound = errors.New("challenge not found")
)
