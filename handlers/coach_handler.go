package handlers

import (
	"net/http"

	"unzone-backend/service"

	"github.com/gin-gonic/gin"
)

// CoachHandler handles HTTP requests for coach interactions
type CoachHandler struct {
	coachService *service.CoachService
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService *service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// CompletionRequest is the body for reporting a completed challenge to the
// coach.
type CompletionRequest struct {
	ChallengeTitle string `json:"challengeTitle" binding:"required"`
	Experience     string `json:"experience"`
}

// ChallengeCompletion handles POST /api/coach/completion. Always 200: the
// coach absorbs every failure into a fallback response.
func (h *CoachHandler) ChallengeCompletion(c *gin.Context) {
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, "completion", err)
		return
	}

	resp := h.coachService.ChallengeCompleted(c.Request.Context(), req.ChallengeTitle, req.Experience)
	c.JSON(http.StatusOK, resp)
}

// SkipRequest is the body for reporting a skipped challenge to the coach.
type SkipRequest struct {
	ChallengeTitle string `json:"challengeTitle" binding:"required"`
	Reason         string `json:"reason"`
}

// ChallengeSkip handles POST /api/coach/skip
func (h *CoachHandler) ChallengeSkip(c *gin.Context) {
	var req SkipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, "skip", err)
		return
	}

	resp := h.coachService.ChallengeSkipped(c.Request.Context(), req.ChallengeTitle, req.Reason)
	c.JSON(http.StatusOK, resp)
}

// Motivation handles GET /api/coach/motivation?title=...
func (h *CoachHandler) Motivation(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title query parameter is required"})
		return
	}

	msg := h.coachService.Motivation(c.Request.Context(), title)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
