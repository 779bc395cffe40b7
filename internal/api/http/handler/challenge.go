package handler

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// ChallengeService defines client-visible challenge operations.
type ChallengeService interface {
	List(ctx context.Context) ([]model.ChallengeSummary, error)
	OpenAttachment(ctx context.Context, challengeID, name string) (io.ReadCloser, error)
}

// Challenge handles HTTP endpoints for browsing challenges.
type Challenge struct {
	challengeService ChallengeService
	logger           *logger.Logger
}

// NewChallenge creates a new Challenge handler.
func NewChallenge(challengeService ChallengeService, logger *logger.Logger) *Challenge {
	return &Challenge{
		challengeService: challengeService,
		logger:           logger,
	}
}

// List returns all challenges, flags withheld.
func (h *Challenge) List(c *gin.Context) {
	summaries, err := h.challengeService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// DownloadAttachment streams one declared attachment of a challenge.
func (h *Challenge) DownloadAttachment(c *gin.Context) {
	challengeID := c.Param("id")
	name := c.Param("name")

	reader, err := h.challengeService.OpenAttachment(c.Request.Context(), challengeID, name)
	if err != nil {
		handleError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("Challenge handler: attachment stream interrupted",
			"challenge_id", challengeID,
			"name", name,
			"error", err.Error())
	}
}
