package model

import (
	"context"
	"time"
)

// SubmissionLedger is the append-only collection of solve events and the
// sole source of truth for scoring.
//
// Append is a conditional insert keyed by (username, challenge id): it
// reports inserted=false when an event for the pair already exists. The
// check and the insert are a single atomic step, which is what keeps the
// one-event-per-pair invariant intact when two correct submissions race.
type SubmissionLedger interface {
	Append(ctx context.Context, submission Submission) (inserted bool, err error)
	Contains(ctx context.Context, username, challengeID string) (bool, error)
	Snapshot(ctx context.Context) ([]Submission, error)
}

// Submission is a single solve event. Events are never mutated or deleted.
type Submission struct {
	Username    string    `json:"user"`
	ChallengeID string    `json:"ctfId"`
	SubmittedAt time.Time `json:"timestamp"`
}

// SubmitResult is the outcome reported to the client for one flag
// submission.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submission outcome messages. These are part of the client contract.
const (
	MessageCorrectFlag   = "Correct flag!"
	MessageAlreadySolved = "Already entered"
	MessageIncorrectFlag = "Incorrect flag entered"
)
