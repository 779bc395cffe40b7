package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// Submission decides whether a candidate flag mints a new ledger event.
type Submission struct {
	catalog model.ChallengeCatalog
	ledger  model.SubmissionLedger
	logger  *logger.Logger
	now     func() time.Time
}

func NewSubmission(
	catalog model.ChallengeCatalog,
	ledger model.SubmissionLedger,
	logger *logger.Logger,
) *Submission {
	return &Submission{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit checks a candidate flag for one challenge.
//
// Outcomes, in order:
//   - unknown challenge: ErrChallengeNotFound
//   - correct flag, already solved: "Already entered", no ledger write
//   - correct flag, first solve: one event appended, "Correct flag!"
//   - wrong flag: "Incorrect flag entered", never touches the ledger,
//     even when the user has solved the challenge before
//
// The ledger append is conditional, so a submission that loses a race
// with a concurrent first solve of the same pair reports "Already
// entered" rather than minting a second event.
func (s *Submission) Submit(ctx context.Context, identity model.Identity, challengeID, candidateFlag string) (model.SubmitResult, error) {
	s.logger.Debug("Submission service: processing submission",
		"username", identity.Username,
		"challenge_id", challengeID)

	challenge, err := s.catalog.GetByID(ctx, challengeID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SubmitResult{}, model.ErrChallengeNotFound
	}
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to get challenge: %w", err)
	}

	alreadySolved, err := s.ledger.Contains(ctx, identity.Username, challengeID)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to check prior solve: %w", err)
	}

	isCorrect := strings.TrimSpace(candidateFlag) == challenge.Flag

	if alreadySolved && isCorrect {
		return model.SubmitResult{Success: false, Message: model.MessageAlreadySolved}, nil
	}

	if isCorrect {
		inserted, err := s.ledger.Append(ctx, model.Submission{
			Username:    identity.Username,
			ChallengeID: challengeID,
			SubmittedAt: s.now(),
		})
		if err != nil {
			return model.SubmitResult{}, fmt.Errorf("failed to append submission: %w", err)
		}
		if !inserted {
			return model.SubmitResult{Success: false, Message: model.MessageAlreadySolved}, nil
		}

		s.logger.Info("Submission service: challenge solved",
			"username", identity.Username,
			"challenge_id", challengeID)

		return model.SubmitResult{Success: true, Message: model.MessageCorrectFlag}, nil
	}

	return model.SubmitResult{Success: false, Message: model.MessageIncorrectFlag}, nil
}
