package handlers

import (
	"net/http"

	"unzone-backend/models"
	"unzone-backend/repository"

	"github.com/gin-gonic/gin"
)

// GardenHandler handles HTTP requests for garden plants and achievements
type GardenHandler struct {
	store repository.Store
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(store repository.Store) *GardenHandler {
	return &GardenHandler{store: store}
}

// CreateGardenPlant handles POST /api/garden-plants
func (h *GardenHandler) CreateGardenPlant(c *gin.Context) {
	var ins models.InsertGardenPlant
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "garden plant", err)
		return
	}

	plant, err := h.store.CreateGardenPlant(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Garden plant not found")
		return
	}
	c.JSON(http.StatusCreated, plant)
}

// ListGardenPlantsByUser handles GET /api/garden-plants/user/:userId
func (h *GardenHandler) ListGardenPlantsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	plants, err := h.store.ListGardenPlantsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, plants)
}

// UpdateGardenPlant handles PUT /api/garden-plants/:id
func (h *GardenHandler) UpdateGardenPlant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.GardenPlantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, "garden plant", err)
		return
	}

	plant, err := h.store.UpdateGardenPlant(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Garden plant not found")
		return
	}
	c.JSON(http.StatusOK, plant)
}

// CreateAchievement handles POST /api/achievements
func (h *GardenHandler) CreateAchievement(c *gin.Context) {
	var ins models.InsertAchievement
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "achievement", err)
		return
	}

	achievement, err := h.store.CreateAchievement(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Achievement not found")
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

// ListAchievementsByUser handles GET /api/achievements/user/:userId
func (h *GardenHandler) ListAchievementsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	achievements, err := h.store.ListAchievementsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
