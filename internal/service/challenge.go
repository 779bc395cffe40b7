package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// Challenge serves client-visible challenge data. Flags never cross this
// service's boundary.
type Challenge struct {
	catalog model.ChallengeCatalog
	storage model.Storage
	logger  *logger.Logger
}

func NewChallenge(catalog model.ChallengeCatalog, storage model.Storage, logger *logger.Logger) *Challenge {
	return &Challenge{
		catalog: catalog,
		storage: storage,
		logger:  logger,
	}
}

// List returns all challenges with flags withheld, in catalog order.
func (s *Challenge) List(ctx context.Context) ([]model.ChallengeSummary, error) {
	challenges, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	summaries := make([]model.ChallengeSummary, 0, len(challenges))
	for _, c := range challenges {
		summaries = append(summaries, c.Summary())
	}

	return summaries, nil
}

// OpenAttachment streams one attachment of a challenge. Only names
// declared in the catalog entry are served; anything else is a not-found,
// so the object store is never an open proxy.
func (s *Challenge) OpenAttachment(ctx context.Context, challengeID, name string) (io.ReadCloser, error) {
	challenge, err := s.catalog.GetByID(ctx, challengeID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrChallengeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	if s.storage == nil || !slices.Contains(challenge.Attachments, name) {
		return nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, path.Join(challengeID, name))
	if err != nil {
		s.logger.Error("Challenge service: failed to download attachment",
			"challenge_id", challengeID,
			"name", name,
			"error", err.Error())
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}

	return reader, nil
}
