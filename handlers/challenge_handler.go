package handlers

import (
	"net/http"
	"strconv"
	"time"

	"unzone-backend/models"
	"unzone-backend/repository"
	"unzone-backend/service"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler handles HTTP requests for challenges
type ChallengeHandler struct {
	store            repository.Store
	challengeService *service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(store repository.Store, challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		store:            store,
		challengeService: challengeService,
	}
}

// GenerateChallenge handles GET /api/challenges/generate/:userId
func (h *ChallengeHandler) GenerateChallenge(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	challenge, err := h.challengeService.Generate(c.Request.Context(), userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// CreateChallenge handles POST /api/challenges
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var ins models.InsertChallenge
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "challenge", err)
		return
	}

	challenge, err := h.store.CreateChallenge(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Challenge not found")
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// GetChallenge handles GET /api/challenges/:id
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	challenge, err := h.store.GetChallenge(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Challenge not found")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// ListChallenges handles GET /api/challenges
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	challenges, err := h.store.ListChallenges(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// ListChallengesByUser handles GET /api/challenges/user/:userId
func (h *ChallengeHandler) ListChallengesByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	challenges, err := h.store.ListChallengesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// ListChallengesByTopic handles GET /api/challenges/topic/:topic
func (h *ChallengeHandler) ListChallengesByTopic(c *gin.Context) {
	challenges, err := h.store.ListChallengesByTopic(c.Request.Context(), c.Param("topic"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// ListChallengesByDifficulty handles GET /api/challenges/difficulty/:difficulty
func (h *ChallengeHandler) ListChallengesByDifficulty(c *gin.Context) {
	difficulty := models.Difficulty(c.Param("difficulty"))
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid difficulty"})
		return
	}

	challenges, err := h.store.ListChallengesByDifficulty(c.Request.Context(), difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// ListChallengesByDate handles GET /api/challenges/date?date=YYYY-MM-DD
func (h *ChallengeHandler) ListChallengesByDate(c *gin.Context) {
	day, ok := dateQuery(c)
	if !ok {
		return
	}

	challenges, err := h.store.ListChallengesByDate(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// ListChallengesByCompleted handles GET /api/challenges/completed/:isCompleted
func (h *ChallengeHandler) ListChallengesByCompleted(c *gin.Context) {
	isCompleted, err := strconv.ParseBool(c.Param("isCompleted"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid isCompleted"})
		return
	}

	challenges, err := h.store.ListChallengesByCompleted(c.Request.Context(), isCompleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// UpdateChallenge handles PUT /api/challenges/:id
func (h *ChallengeHandler) UpdateChallenge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.ChallengeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, "challenge", err)
		return
	}

	challenge, err := h.store.UpdateChallenge(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Challenge not found")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge handles DELETE /api/challenges/:id
func (h *ChallengeHandler) DeleteChallenge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteChallenge(c.Request.Context(), id); err != nil {
		storeError(c, err, "Challenge not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted successfully"})
}

// dateQuery parses the required date query parameter (YYYY-MM-DD). Missing
// or malformed values get a 400, not a 500.
func dateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date query parameter is required"})
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
