package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/api/http/middleware"
	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// SubmissionService decides flag submission outcomes.
type SubmissionService interface {
	Submit(ctx context.Context, identity model.Identity, challengeID, candidateFlag string) (model.SubmitResult, error)
}

// Submission handles the flag submission endpoint.
type Submission struct {
	submissionService SubmissionService
	logger            *logger.Logger
}

// NewSubmission creates a new Submission handler.
func NewSubmission(submissionService SubmissionService, logger *logger.Logger) *Submission {
	return &Submission{
		submissionService: submissionService,
		logger:            logger,
	}
}

type submitRequest struct {
	CTFID         string `json:"ctfId" binding:"required"`
	SubmittedFlag string `json:"submittedFlag" binding:"required"`
}

// Submit validates the body and reports the submission outcome. The
// identity comes from the session middleware, never from the payload.
func (h *Submission) Submit(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ctfId and submittedFlag are required"})
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), identity, req.CTFID, req.SubmittedFlag)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
