package service

import (
	"context"
	"errors"
	"testing"

	"unzone-backend/models"
	"unzone-backend/repository"
)

func newTestUser(t *testing.T, store repository.Store) *models.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), models.InsertUser{
		FirebaseUID: "fb-test-1",
		Email:       "test@example.com",
		Name:        "Test User",
		Username:    "testuser",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestGenerateUnknownUser(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewChallengeService(WithStore(store))

	_, err := svc.Generate(context.Background(), 42)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	challenges, err := store.ListChallenges(context.Background())
	if err != nil {
		t.Fatalf("ListChallenges failed: %v", err)
	}
	if len(challenges) != 0 {
		t.Fatalf("expected no challenges persisted, got %d", len(challenges))
	}
}

func TestGeneratePersistsCatalogChallenge(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewChallengeService(WithStore(store))
	user := newTestUser(t, store)

	first, err := svc.Generate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := svc.Generate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct challenge ids, both were %d", first.ID)
	}

	for _, ch := range []*models.Challenge{first, second} {
		if ch.UserID == nil || *ch.UserID != user.ID {
			t.Fatalf("challenge %d not attached to user %d", ch.ID, user.ID)
		}
		if ch.IsCompleted {
			t.Fatalf("generated challenge %d should not be completed", ch.ID)
		}
		found := false
		for _, cat := range challengeCatalog {
			if cat.Title == ch.Title && string(cat.Difficulty) == string(ch.Difficulty) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("generated challenge %q not in catalog", ch.Title)
		}
	}

	persisted, err := store.ListChallengesByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListChallengesByUser failed: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted challenges, got %d", len(persisted))
	}
}

func TestAssignTopic(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewChallengeService(WithStore(store))
	user := newTestUser(t, store)

	topic, updated, err := svc.AssignTopic(context.Background(), user.ID, []string{"I want to meet people"})
	if err != nil {
		t.Fatalf("AssignTopic failed: %v", err)
	}

	found := false
	for _, candidate := range topicCatalog {
		if candidate == topic {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("assigned topic %q not in catalog", topic)
	}

	if len(updated.ChallengePreferences) != 1 || updated.ChallengePreferences[0] != topic {
		t.Fatalf("expected preferences [%q], got %v", topic, updated.ChallengePreferences)
	}

	stored, err := store.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if len(stored.ChallengePreferences) != 1 || stored.ChallengePreferences[0] != topic {
		t.Fatalf("topic not persisted, got %v", stored.ChallengePreferences)
	}
}

func TestAssignTopicUnknownUser(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewChallengeService(WithStore(store))

	_, _, err := svc.AssignTopic(context.Background(), 99, nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetDailyStatsLeavesUsersUntouched(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewChallengeService(WithStore(store))
	user := newTestUser(t, store)

	streak := 4
	coins := 120
	if _, err := store.UpdateUser(context.Background(), user.ID, models.UserUpdate{Streak: &streak, Coins: &coins}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	count, err := svc.ResetDailyStats(context.Background())
	if err != nil {
		t.Fatalf("ResetDailyStats failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user touched, got %d", count)
	}

	after, err := store.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if after.Streak != 4 || after.Coins != 120 {
		t.Fatalf("reset mutated user state: streak=%d coins=%d", after.Streak, after.Coins)
	}
}
