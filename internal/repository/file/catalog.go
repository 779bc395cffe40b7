package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.ChallengeCatalog = (*ChallengeCatalog)(nil)

// ChallengeCatalog serves challenges from a JSON file parsed once at
// construction. Challenges are immutable for the process lifetime.
type ChallengeCatalog struct {
	challenges []model.Challenge
	byID       map[string]model.Challenge
}

func NewChallengeCatalog(path string) (*ChallengeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge file: %w", err)
	}

	var challenges []model.Challenge
	if err := json.Unmarshal(data, &challenges); err != nil {
		return nil, fmt.Errorf("failed to parse challenge file: %w", err)
	}

	byID := make(map[string]model.Challenge, len(challenges))
	for _, c := range challenges {
		if c.ID == "" {
			return nil, fmt.Errorf("challenge %q has no id", c.Title)
		}
		if _, exists := byID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate challenge id %q", c.ID)
		}
		byID[c.ID] = c
	}

	return &ChallengeCatalog{
		challenges: challenges,
		byID:       byID,
	}, nil
}

func (c *ChallengeCatalog) GetByID(ctx context.Context, id string) (model.Challenge, error) {
	challenge, ok := c.byID[id]
	if !ok {
		return model.Challenge{}, model.ErrNotFound
	}
	return challenge, nil
}

// List returns challenges in file order.
func (c *ChallengeCatalog) List(ctx context.Context) ([]model.Challenge, error) {
	return slices.Clone(c.challenges), nil
}
