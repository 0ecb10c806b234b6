package handlers

import (
	"net/http"

	"unzone-backend/models"
	"unzone-backend/repository"
	"unzone-backend/service"

	"github.com/gin-gonic/gin"
)

// JournalSummaryHandler handles HTTP requests for journal summaries
type JournalSummaryHandler struct {
	store        repository.Store
	coachService *service.CoachService
}

// NewJournalSummaryHandler creates a new journal summary handler
func NewJournalSummaryHandler(store repository.Store, coachService *service.CoachService) *JournalSummaryHandler {
	return &JournalSummaryHandler{
		store:        store,
		coachService: coachService,
	}
}

// CreateJournalSummary handles POST /api/journal-summaries
func (h *JournalSummaryHandler) CreateJournalSummary(c *gin.Context) {
	var ins models.InsertJournalSummary
	if err := c.ShouldBindJSON(&ins); err != nil {
		bindingError(c, "journal summary", err)
		return
	}

	summary, err := h.store.CreateJournalSummary(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// GenerateJournalSummary handles POST /api/journal-summaries/generate/:journalId.
// The coach condenses the journal; its fallback means generation itself
// cannot fail, only the journal lookup can.
func (h *JournalSummaryHandler) GenerateJournalSummary(c *gin.Context) {
	journalID, ok := pathID(c, "journalId")
	if !ok {
		return
	}

	journal, err := h.store.GetJournal(c.Request.Context(), journalID)
	if err != nil {
		storeError(c, err, "Journal not found")
		return
	}

	insight := h.coachService.SummarizeJournal(c.Request.Context(), journal)

	ins := models.InsertJournalSummary{
		JournalID: &journal.ID,
		UserID:    journal.UserID,
		Summary:   insight.Summary,
		Sentiment: &insight.Sentiment,
		MoodTag:   insight.MoodTag,
	}
	summary, err := h.store.CreateJournalSummary(c.Request.Context(), ins)
	if err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// GetJournalSummary handles GET /api/journal-summaries/:id
func (h *JournalSummaryHandler) GetJournalSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.store.GetJournalSummary(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetJournalSummaryByJournal handles GET /api/journal-summaries/journal/:journalId
func (h *JournalSummaryHandler) GetJournalSummaryByJournal(c *gin.Context) {
	journalID, ok := pathID(c, "journalId")
	if !ok {
		return
	}

	summary, err := h.store.GetJournalSummaryByJournal(c.Request.Context(), journalID)
	if err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListJournalSummaries handles GET /api/journal-summaries
func (h *JournalSummaryHandler) ListJournalSummaries(c *gin.Context) {
	summaries, err := h.store.ListJournalSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListJournalSummariesByUser handles GET /api/journal-summaries/user/:userId
func (h *JournalSummaryHandler) ListJournalSummariesByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	summaries, err := h.store.ListJournalSummariesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListJournalSummariesByDate handles GET /api/journal-summaries/date?date=YYYY-MM-DD
func (h *JournalSummaryHandler) ListJournalSummariesByDate(c *gin.Context) {
	day, ok := dateQuery(c)
	if !ok {
		return
	}

	summaries, err := h.store.ListJournalSummariesByDate(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListJournalSummariesByMood handles GET /api/journal-summaries/mood/:moodTag
func (h *JournalSummaryHandler) ListJournalSummariesByMood(c *gin.Context) {
	summaries, err := h.store.ListJournalSummariesByMood(c.Request.Context(), c.Param("moodTag"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// UpdateJournalSummary handles PUT /api/journal-summaries/:id
func (h *JournalSummaryHandler) UpdateJournalSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd models.JournalSummaryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, "journal summary", err)
		return
	}

	summary, err := h.store.UpdateJournalSummary(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteJournalSummary handles DELETE /api/journal-summaries/:id
func (h *JournalSummaryHandler) DeleteJournalSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteJournalSummary(c.Request.Context(), id); err != nil {
		storeError(c, err, "Journal summary not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal summary deleted successfully"})
}
