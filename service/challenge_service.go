package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"unzone-backend/models"
	"unzone-backend/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// challengeCatalog is the fixed set of comfort-zone challenges the generator
// draws from. Selection is uniform; stored user preferences are deliberately
// ignored for now.
var challengeCatalog = []models.InsertChallenge{
	{
		Title:       "Start a conversation with a stranger",
		Description: "Strike up a friendly conversation with someone you don't know",
		Category:    "Social",
		Difficulty:  models.DifficultyMedium,
		Reward:      intPtr(25),
	},
	{
		Title:       "Try a new hobby for 30 minutes",
		Description: "Explore something you've never done before",
		Category:    "Creative",
		Difficulty:  models.DifficultyEasy,
		Reward:      intPtr(15),
	},
	{
		Title:       "Take a different route to work",
		Description: "Change your routine and discover something new",
		Category:    "Adventure",
		Difficulty:  models.DifficultyEasy,
		Reward:      intPtr(10),
	},
	{
		Title:       "Give a genuine compliment to 3 people",
		Description: "Spread positivity and practice vulnerability",
		Category:    "Social",
		Difficulty:  models.DifficultyMedium,
		Reward:      intPtr(20),
	},
	{
		Title:       "Eat at a restaurant alone",
		Description: "Practice being comfortable with solitude in public",
		Category:    "Independence",
		Difficulty:  models.DifficultyHard,
		Reward:      intPtr(35),
	},
}

// topicCatalog is the fixed set of growth topics assignable from onboarding
// answers. The answers themselves are not inspected.
var topicCatalog = []string{
	"Social Confidence",
	"Creative Expression",
	"Physical Activity",
	"Professional Skills",
	"Mindfulness",
}

// ChallengeService generates challenges and handles the topic-assignment and
// daily-reset flows.
type ChallengeService struct {
	store repository.Store
}

// ChallengeServiceOption is a functional option for ChallengeService
type ChallengeServiceOption func(*ChallengeService)

// WithStore sets the entity store
func WithStore(store repository.Store) ChallengeServiceOption {
	return func(s *ChallengeService) {
		s.store = store
	}
}

// NewChallengeService creates a new challenge service
func NewChallengeService(opts ...ChallengeServiceOption) *ChallengeService {
	s := &ChallengeService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate picks one catalog challenge at random and persists it for the
// user. The user must exist; nothing is written otherwise. Every call
// creates a fresh challenge.
func (s *ChallengeService) Generate(ctx context.Context, userID int) (*models.Challenge, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ins := challengeCatalog[rand.IntN(len(challengeCatalog))]
	ins.UserID = &userID
	return s.store.CreateChallenge(ctx, ins)
}

// AssignTopic picks a topic for the user and stores it as their challenge
// preference. The onboarding answers are accepted but not yet fed into the
// choice.
func (s *ChallengeService) AssignTopic(ctx context.Context, userID int, answers []string) (string, *models.User, error) {
	if s.store == nil {
		return "", nil, errors.New("store not set")
	}

	topic := topicCatalog[rand.IntN(len(topicCatalog))]
	user, err := s.store.UpdateUser(ctx, userID, models.UserUpdate{
		ChallengePreferences: []string{topic},
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}
	return topic, user, nil
}

// ResetDailyStats walks every user applying an empty update and reports how
// many were touched. The actual reset rules are still an open product
// decision; callers get a success-shaped answer that changes no state.
func (s *ChallengeService) ResetDailyStats(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, errors.New("store not set")
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if _, err := s.store.UpdateUser(ctx, u.ID, models.UserUpdate{}); err != nil {
			return 0, err
		}
	}
	return len(users), nil
}

func intPtr(n int) *int {
	return &n
}
