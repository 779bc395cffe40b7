package model

import "time"

// Leaderboard is the full ranking view: the overall board plus one board
// per challenge that has at least one solve.
type Leaderboard struct {
	Overall    []OverallEntry              `json:"overall"`
	Challenges map[string][]ChallengeEntry `json:"ctfs"`
}

// OverallEntry ranks one user across all challenges.
type OverallEntry struct {
	Username           string    `json:"username"`
	SolvedCount        int       `json:"solvedCount"`
	SolvedChallengeIDs []string  `json:"solvedCTFs"`
	LastSolvedAt       time.Time `json:"lastSolved"`
}

// ChallengeEntry ranks one solver of a single challenge.
type ChallengeEntry struct {
	Username string    `json:"username"`
	SolvedAt time.Time `json:"timestamp"`
}
