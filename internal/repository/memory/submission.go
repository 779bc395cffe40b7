package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.SubmissionLedger = (*SubmissionLedger)(nil)

// SubmissionLedger is a process-local ledger. One mutex covers the
// check-and-insert in Append, giving the same conditional-append contract
// as the postgres backend.
type SubmissionLedger struct {
	mu     sync.Mutex
	events []model.Submission
	seen   map[[2]string]struct{}
}

func NewSubmissionLedger() *SubmissionLedger {
	return &SubmissionLedger{
		seen: make(map[[2]string]struct{}),
	}
}

func (l *SubmissionLedger) Append(ctx context.Context, submission model.Submission) (bool, error) {
	key := [2]string{submission.Username, submission.ChallengeID}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[key]; ok {
		return false, nil
	}

	l.seen[key] = struct{}{}
	l.events = append(l.events, submission)
	return true, nil
}

func (l *SubmissionLedger) Contains(ctx context.Context, username, challengeID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.seen[[2]string{username, challengeID}]
	return ok, nil
}

func (l *SubmissionLedger) Snapshot(ctx context.Context) ([]model.Submission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.events), nil
}
