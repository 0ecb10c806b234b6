package handlers

import (
	"net/http"

	"unzone-backend/models"
	"unzone-backend/repository"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles HTTP requests for journal entries
type JournalHandler struct {
	store repository.Store
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(store repository.Store) *JournalHandler {
	return &JournalHandler{store: store}
}

// CreateJournal handles POST /api/journals
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	var ins models.InsertJournal
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "journal", err)
		return
	}

	journal, err := h.store.CreateJournal(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Journal not found")
		return
	}
	c.JSON(http.StatusCreated, journal)
}

// GetJournal handles GET /api/journals/:id
func (h *JournalHandler) GetJournal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	journal, err := h.store.GetJournal(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// ListJournals handles GET /api/journals
func (h *JournalHandler) ListJournals(c *gin.Context) {
	journals, err := h.store.ListJournals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, journals)
}

// ListJournalsByUser handles GET /api/journals/user/:userId
func (h *JournalHandler) ListJournalsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	journals, err := h.store.ListJournalsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, journals)
}

// ListJournalsByDate handles GET /api/journals/date?date=YYYY-MM-DD
func (h *JournalHandler) ListJournalsByDate(c *gin.Context) {
	day, ok := dateQuery(c)
	if !ok {
		return
	}

	journals, err := h.store.ListJournalsByDate(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, journals)
}

// UpdateJournal handles PUT /api/journals/:id
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.JournalUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, "journal", err)
		return
	}

	journal, err := h.store.UpdateJournal(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// DeleteJournal handles DELETE /api/journals/:id
func (h *JournalHandler) DeleteJournal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteJournal(c.Request.Context(), id); err != nil {
		storeError(c, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal deleted successfully"})
}
