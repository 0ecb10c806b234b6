package repository

import (
	"context"
	"errors"
	"time"

	"unzone-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	// Absence is a value here, never a panic.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a create would violate a declared
	// uniqueness constraint (firebaseUid, email, username).
	ErrDuplicate = errors.New("record already exists")
)

// Store is the sole authority over entity persistence for the process
// lifetime. Implementations must fill declared defaults on create, assign
// ids and creation timestamps, and merge updates atomically per record.
type Store interface {
	// Users. Users are never deleted; see the handler-level stub.
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, ins models.InsertUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)

	// Challenges.
	GetChallenge(ctx context.Context, id int) (*models.Challenge, error)
	ListChallengesByUser(ctx context.Context, userID int) ([]models.Challenge, error)
	ListChallengesByTopic(ctx context.Context, topic string) ([]models.Challenge, error)
	ListChallengesByDifficulty(ctx context.Context, difficulty models.Difficulty) ([]models.Challenge, error)
	ListChallengesByDate(ctx context.Context, day time.Time) ([]models.Challenge, error)
	ListChallengesByCompleted(ctx context.Context, isCompleted bool) ([]models.Challenge, error)
	ListChallenges(ctx context.Context) ([]models.Challenge, error)
	CreateChallenge(ctx context.Context, ins models.InsertChallenge) (*models.Challenge, error)
	UpdateChallenge(ctx context.Context, id int, upd models.ChallengeUpdate) (*models.Challenge, error)
	DeleteChallenge(ctx context.Context, id int) error

	// Journals.
	GetJournal(ctx context.Context, id int) (*models.Journal, error)
	ListJournalsByUser(ctx context.Context, userID int) ([]models.Journal, error)
	ListJournalsByDate(ctx context.Context, day time.Time) ([]models.Journal, error)
	ListJournals(ctx context.Context) ([]models.Journal, error)
	CreateJournal(ctx context.Context, ins models.InsertJournal) (*models.Journal, error)
	UpdateJournal(ctx context.Context, id int, upd models.JournalUpdate) (*models.Journal, error)
	DeleteJournal(ctx context.Context, id int) error

	// Journal summaries.
	GetJournalSummary(ctx context.Context, id int) (*models.JournalSummary, error)
	ListJournalSummariesByUser(ctx context.Context, userID int) ([]models.JournalSummary, error)
	GetJournalSummaryByJournal(ctx context.Context, journalID int) (*models.JournalSummary, error)
	ListJournalSummariesByDate(ctx context.Context, day time.Time) ([]models.JournalSummary, error)
	ListJournalSummariesByMood(ctx context.Context, moodTag string) ([]models.JournalSummary, error)
	ListJournalSummaries(ctx context.Context) ([]models.JournalSummary, error)
	CreateJournalSummary(ctx context.Context, ins models.InsertJournalSummary) (*models.JournalSummary, error)
	UpdateJournalSummary(ctx context.Context, id int, upd models.JournalSummaryUpdate) (*models.JournalSummary, error)
	DeleteJournalSummary(ctx context.Context, id int) error

	// Garden plants. No delete operation is defined.
	ListGardenPlantsByUser(ctx context.Context, userID int) ([]models.GardenPlant, error)
	CreateGardenPlant(ctx context.Context, ins models.InsertGardenPlant) (*models.GardenPlant, error)
	UpdateGardenPlant(ctx context.Context, id int, upd models.GardenPlantUpdate) (*models.GardenPlant, error)

	// Achievements. Create-only.
	ListAchievementsByUser(ctx context.Context, userID int) ([]models.Achievement, error)
	CreateAchievement(ctx context.Context, ins models.InsertAchievement) (*models.Achievement, error)

	// Files (avatar blob metadata).
	CreateFile(ctx context.Context, file *models.File) error
	GetFile(ctx context.Context, id uuid.UUID) (*models.File, error)
}

// sameDay reports whether t falls on the given calendar day. Both are
// compared in the process-local timezone, matching the original behavior.
func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
