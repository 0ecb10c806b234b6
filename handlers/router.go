package handlers

import (
	"unzone-backend/repository"
	"unzone-backend/service"
	"unzone-backend/storage"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Store            repository.Store
	ChallengeService *service.ChallengeService
	CoachService     *service.CoachService
	Blobs            storage.Storage
}

// RegisterRoutes wires all API routes onto the router. Param names must stay
// consistent per path position (gin rejects :id and :userId as siblings), so
// user subroutes reuse :id.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	userHandler := NewUserHandler(deps.Store, deps.ChallengeService)
	challengeHandler := NewChallengeHandler(deps.Store, deps.ChallengeService)
	journalHandler := NewJournalHandler(deps.Store)
	summaryHandler := NewJournalSummaryHandler(deps.Store, deps.CoachService)
	gardenHandler := NewGardenHandler(deps.Store)
	coachHandler := NewCoachHandler(deps.CoachService)
	fileHandler := NewFileHandler(deps.Store, deps.Blobs)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// User endpoints
		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/firebase/:firebaseUid", userHandler.GetUserByFirebaseUID)
		api.GET("/users/email/:email", userHandler.GetUserByEmail)
		api.GET("/users/username/:username", userHandler.GetUserByUsername)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
		api.POST("/users/:id/assign-topic-from-answers", userHandler.AssignTopic)
		api.POST("/users/admin/reset-daily-stats", userHandler.ResetDailyStats)
		api.POST("/users/:id/avatar", fileHandler.UploadAvatar)

		// Challenge endpoints
		api.GET("/challenges", challengeHandler.ListChallenges)
		api.POST("/challenges", challengeHandler.CreateChallenge)
		api.GET("/challenges/generate/:userId", challengeHandler.GenerateChallenge)
		api.GET("/challenges/:id", challengeHandler.GetChallenge)
		api.GET("/challenges/user/:userId", challengeHandler.ListChallengesByUser)
		api.GET("/challenges/topic/:topic", challengeHandler.ListChallengesByTopic)
		api.GET("/challenges/difficulty/:difficulty", challengeHandler.ListChallengesByDifficulty)
		api.GET("/challenges/date", challengeHandler.ListChallengesByDate)
		api.GET("/challenges/completed/:isCompleted", challengeHandler.ListChallengesByCompleted)
		api.PUT("/challenges/:id", challengeHandler.UpdateChallenge)
		api.DELETE("/challenges/:id", challengeHandler.DeleteChallenge)

		// Journal endpoints
		api.GET("/journals", journalHandler.ListJournals)
		api.POST("/journals", journalHandler.CreateJournal)
		api.GET("/journals/:id", journalHandler.GetJournal)
		api.GET("/journals/user/:userId", journalHandler.ListJournalsByUser)
		api.GET("/journals/date", journalHandler.ListJournalsByDate)
		api.PUT("/journals/:id", journalHandler.UpdateJournal)
		api.DELETE("/journals/:id", journalHandler.DeleteJournal)

		// Journal summary endpoints
		api.GET("/journal-summaries", summaryHandler.ListJournalSummaries)
		api.POST("/journal-summaries", summaryHandler.CreateJournalSummary)
		api.POST("/journal-summaries/generate/:journalId", summaryHandler.GenerateJournalSummary)
		api.GET("/journal-summaries/:id", summaryHandler.GetJournalSummary)
		api.GET("/journal-summaries/user/:userId", summaryHandler.ListJournalSummariesByUser)
		api.GET("/journal-summaries/journal/:journalId", summaryHandler.GetJournalSummaryByJournal)
		api.GET("/journal-summaries/date", summaryHandler.ListJournalSummariesByDate)
		api.GET("/journal-summaries/mood/:moodTag", summaryHandler.ListJournalSummariesByMood)
		api.PUT("/journal-summaries/:id", summaryHandler.UpdateJournalSummary)
		api.DELETE("/journal-summaries/:id", summaryHandler.DeleteJournalSummary)

		// Garden endpoints
		api.GET("/garden-plants/user/:userId", gardenHandler.ListGardenPlantsByUser)
		api.POST("/garden-plants", gardenHandler.CreateGardenPlant)
		api.PUT("/garden-plants/:id", gardenHandler.UpdateGardenPlant)
		api.GET("/achievements/user/:userId", gardenHandler.ListAchievementsByUser)
		api.POST("/achievements", gardenHandler.CreateAchievement)

		// Coach endpoints
		api.POST("/coach/completion", coachHandler.ChallengeCompletion)
		api.POST("/coach/skip", coachHandler.ChallengeSkip)
		api.GET("/coach/motivation", coachHandler.Motivation)

		// File endpoints
		api.GET("/files/:id", fileHandler.GetFile)
	}
}
