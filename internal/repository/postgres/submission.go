package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.SubmissionLedger = (*SubmissionRepository)(nil)

// SubmissionRepository is the durable submission ledger. Rows are only
// ever inserted; the (username, challenge_id) primary key plus
// ON CONFLICT DO NOTHING makes Append an atomic check-and-insert, so two
// racing correct submissions can never both be credited.
type SubmissionRepository struct {
	db *Connection
}

func NewSubmissionRepository(db *Connection) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

func (r *SubmissionRepository) Append(ctx context.Context, submission model.Submission) (bool, error) {
	query := `INSERT INTO submissions (username, challenge_id, submitted_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (username, challenge_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		submission.Username, submission.ChallengeID, submission.SubmittedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to append submission: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *SubmissionRepository) Contains(ctx context.Context, username, challengeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
				SELECT 1 FROM submissions WHERE username = $1 AND challenge_id = $2
			  )`

	err := r.db.QueryRow(ctx, query, username, challengeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check submission: %w", err)
	}

	return exists, nil
}

func (r *SubmissionRepository) Snapshot(ctx context.Context) ([]model.Submission, error) {
	query := `SELECT username, challenge_id, submitted_at
			  FROM submissions ORDER BY submitted_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	defer rows.Close()

	var submissions []model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.Username, &s.ChallengeID, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}
