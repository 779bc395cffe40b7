package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// LeaderboardService recomputes ranking views from the ledger.
type LeaderboardService interface {
	Compute(ctx context.Context) (model.Leaderboard, error)
}

// Leaderboard handles the ranking endpoint.
type Leaderboard struct {
	leaderboardService LeaderboardService
	logger             *logger.Logger
}

// NewLeaderboard creates a new Leaderboard handler.
func NewLeaderboard(leaderboardService LeaderboardService, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// Get returns the overall and per-challenge boards.
func (h *Leaderboard) Get(c *gin.Context) {
	leaderboard, err := h.leaderboardService.Compute(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}
