package handlers

import (
	"net/http"

	"unzone-backend/models"
	"unzone-backend/repository"
	"unzone-backend/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	store            repository.Store
	challengeService *service.ChallengeService
}

// NewUserHandler creates a new user handler
func NewUserHandler(store repository.Store, challengeService *service.ChallengeService) *UserHandler {
	return &UserHandler{
		store:            store,
		challengeService: challengeService,
	}
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var ins models.InsertUser
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "user", err)
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByFirebaseUID handles GET /api/users/firebase/:firebaseUid
func (h *UserHandler) GetUserByFirebaseUID(c *gin.Context) {
	user, err := h.store.GetUserByFirebaseUID(c.Request.Context(), c.Param("firebaseUid"))
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByEmail handles GET /api/users/email/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.store.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByUsername handles GET /api/users/username/:username
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.store.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, "user", err)
		return
	}

	user, err := h.store.UpdateUser(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id. Deliberately a stub: the
// response is success shaped but no state changes. Account removal waits on
// the identity-provider offboarding story.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deletion not implemented yet"})
}

// AssignTopicRequest is the body for topic assignment from onboarding
// answers.
type AssignTopicRequest struct {
	Answers []string `json:"answers"`
}

// AssignTopic handles POST /api/users/:id/assign-topic-from-answers
func (h *UserHandler) AssignTopic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AssignTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, "answers", err)
		return
	}

	topic, user, err := h.challengeService.AssignTopic(c.Request.Context(), id, req.Answers)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignedTopic": topic,
		"user":          user,
	})
}

// ResetDailyStats handles POST /api/users/admin/reset-daily-stats. The reset
// rules are still undecided; this walks every user without changing state.
func (h *UserHandler) ResetDailyStats(c *gin.Context) {
	count, err := h.challengeService.ResetDailyStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Daily stats reset",
		"affectedUsers": count,
	})
}
