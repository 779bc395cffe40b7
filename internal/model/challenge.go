package model

import "context"

// ChallengeCatalog resolves challenge ids. Read-only for the process
// lifetime.
type ChallengeCatalog interface {
	GetByID(ctx context.Context, id string) (Challenge, error)
	List(ctx context.Context) ([]Challenge, error)
}

// Challenge describes a single challenge. Flag must never leave the
// submission path; API responses use ChallengeSummary instead.
type Challenge struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Flag        string   `json:"flag"`
	Attachments []string `json:"attachments,omitempty"`
}

// ChallengeSummary is the client-visible projection of a challenge.
type ChallengeSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Attachments []string `json:"attachments,omitempty"`
}

// Summary strips the flag from a challenge.
func (c Challenge) Summary() ChallengeSummary {
	return ChallengeSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Attachments: c.Attachments,
	}
}
