package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// Leaderboard recomputes ranking views from the ledger on every call.
// There is no cached aggregate: the views are pure functions of the
// ledger snapshot, and the ledger is bounded by users x challenges.
type Leaderboard struct {
	ledger model.SubmissionLedger
	logger *logger.Logger
}

func NewLeaderboard(ledger model.SubmissionLedger, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		ledger: ledger,
		logger: logger,
	}
}

// Compute builds the overall board and one board per solved challenge.
//
// Overall order: solved count descending, then last solve time ascending
// (first to reach the count wins ties), then username as a stable final
// key. Per-challenge order: solve time ascending.
func (s *Leaderboard) Compute(ctx context.Context) (model.Leaderboard, error) {
	events, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return model.Leaderboard{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	byUser := make(map[string]*model.OverallEntry)
	challenges := make(map[string][]model.ChallengeEntry)

	for _, event := range events {
		entry, ok := byUser[event.Username]
		if !ok {
			entry = &model.OverallEntry{
				Username:     event.Username,
				LastSolvedAt: event.SubmittedAt,
			}
			byUser[event.Username] = entry
		}

		entry.SolvedCount++
		entry.SolvedChallengeIDs = append(entry.SolvedChallengeIDs, event.ChallengeID)
		if event.SubmittedAt.After(entry.LastSolvedAt) {
			entry.LastSolvedAt = event.SubmittedAt
		}

		challenges[event.ChallengeID] = append(challenges[event.ChallengeID], model.ChallengeEntry{
			Username: event.Username,
			SolvedAt: event.SubmittedAt,
		})
	}

	overall := make([]model.OverallEntry, 0, len(byUser))
	for _, entry := range byUser {
		overall = append(overall, *entry)
	}

	slices.SortStableFunc(overall, func(a, b model.OverallEntry) int {
		if a.SolvedCount != b.SolvedCount {
			return b.SolvedCount - a.SolvedCount
		}
		if c := a.LastSolvedAt.Compare(b.LastSolvedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Username, b.Username)
	})

	for id := range challenges {
		slices.SortStableFunc(challenges[id], func(a, b model.ChallengeEntry) int {
			return a.SolvedAt.Compare(b.SolvedAt)
		})
	}

	return model.Leaderboard{
		Overall:    overall,
		Challenges: challenges,
	}, nil
}
