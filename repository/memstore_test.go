package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"unzone-backend/models"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, s *MemStore, firebaseUID, email, username string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.InsertUser{
		FirebaseUID: firebaseUID,
		Email:       email,
		Name:        "Name " + username,
		Username:    username,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return u
}

func TestCreateUserFillsDefaults(t *testing.T) {
	s := NewMemStore()
	u := createUser(t, s, "fb-1", "ann@example.com", "ann")

	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
	if u.Coins != 0 || u.Streak != 0 || u.TotalChallenges != 0 {
		t.Fatalf("expected zero counters, got coins=%d streak=%d total=%d", u.Coins, u.Streak, u.TotalChallenges)
	}
	if u.GardenLevel != 1 {
		t.Fatalf("expected garden level 1, got %d", u.GardenLevel)
	}
	if u.DifficultyPreference != 2 {
		t.Fatalf("expected difficulty preference 2, got %d", u.DifficultyPreference)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestGetAfterCreateRoundTrips(t *testing.T) {
	s := NewMemStore()
	created := createUser(t, s, "fb-1", "ann@example.com", "ann")

	got, err := s.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if !reflect.DeepEqual(created, got) {
		t.Fatalf("round trip mismatch:\ncreated: %+v\ngot:     %+v", created, got)
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := NewMemStore()
	createUser(t, s, "fb-1", "ann@example.com", "ann")

	cases := []models.InsertUser{
		{FirebaseUID: "fb-1", Email: "other@example.com", Name: "x", Username: "other"},
		{FirebaseUID: "fb-2", Email: "ann@example.com", Name: "x", Username: "other2"},
		{FirebaseUID: "fb-3", Email: "third@example.com", Name: "x", Username: "ann"},
	}
	for _, ins := range cases {
		if _, err := s.CreateUser(context.Background(), ins); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate for %+v, got %v", ins, err)
		}
	}
}

func TestUpdateUserPartialMerge(t *testing.T) {
	s := NewMemStore()
	u := createUser(t, s, "fb-1", "ann@example.com", "ann")

	updated, err := s.UpdateUser(context.Background(), u.ID, models.UserUpdate{
		Coins:  intPtr(50),
		Streak: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Coins != 50 || updated.Streak != 3 {
		t.Fatalf("update not applied: coins=%d streak=%d", updated.Coins, updated.Streak)
	}
	if updated.Email != "ann@example.com" || updated.GardenLevel != 1 {
		t.Fatalf("update touched fields it should not have: %+v", updated)
	}

	// empty update is a no-op
	same, err := s.UpdateUser(context.Background(), u.ID, models.UserUpdate{})
	if err != nil {
		t.Fatalf("empty UpdateUser failed: %v", err)
	}
	if !reflect.DeepEqual(updated, same) {
		t.Fatalf("empty update changed state:\nbefore: %+v\nafter:  %+v", updated, same)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	s := NewMemStore()
	if _, err := s.UpdateUser(context.Background(), 7, models.UserUpdate{Coins: intPtr(1)}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChallengeDefaults(t *testing.T) {
	s := NewMemStore()
	ch, err := s.CreateChallenge(context.Background(), models.InsertChallenge{
		Title:       "Try something new",
		Description: "Anything at all",
		Category:    "Adventure",
		Difficulty:  models.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("CreateChallenge failed: %v", err)
	}
	if ch.Reward != 25 {
		t.Fatalf("expected default reward 25, got %d", ch.Reward)
	}
	if ch.IsCompleted {
		t.Fatalf("new challenge should not be completed")
	}
	if ch.CompletedAt != nil {
		t.Fatalf("new challenge should have nil completedAt")
	}
}

func TestDeleteChallenge(t *testing.T) {
	s := NewMemStore()
	ch, err := s.CreateChallenge(context.Background(), models.InsertChallenge{
		Title:       "t",
		Description: "d",
		Category:    "c",
		Difficulty:  models.DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("CreateChallenge failed: %v", err)
	}

	if err := s.DeleteChallenge(context.Background(), ch.ID); err != nil {
		t.Fatalf("DeleteChallenge failed: %v", err)
	}
	if _, err := s.GetChallenge(context.Background(), ch.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteChallenge(context.Background(), ch.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestIDCountersAreIndependent(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := createUser(t, s, "fb-1", "ann@example.com", "ann")
	ch, err := s.CreateChallenge(ctx, models.InsertChallenge{
		Title: "t", Description: "d", Category: "c", Difficulty: models.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("CreateChallenge failed: %v", err)
	}
	j, err := s.CreateJournal(ctx, models.InsertJournal{Content: "today"})
	if err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}

	if u.ID != 1 || ch.ID != 1 || j.ID != 1 {
		t.Fatalf("expected each family to start at 1, got user=%d challenge=%d journal=%d", u.ID, ch.ID, j.ID)
	}
}

func TestListChallengesByUserExactness(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	mkChallenge := func(userID *int) *models.Challenge {
		ch, err := s.CreateChallenge(ctx, models.InsertChallenge{
			UserID: userID, Title: "t", Description: "d", Category: "c",
			Difficulty: models.DifficultyEasy,
		})
		if err != nil {
			t.Fatalf("CreateChallenge failed: %v", err)
		}
		return ch
	}

	a := mkChallenge(intPtr(1))
	b := mkChallenge(intPtr(1))
	mkChallenge(intPtr(2))
	orphan := mkChallenge(nil)

	// Interleave a delete and an update
	if err := s.DeleteChallenge(ctx, b.ID); err != nil {
		t.Fatalf("DeleteChallenge failed: %v", err)
	}
	if _, err := s.UpdateChallenge(ctx, orphan.ID, models.ChallengeUpdate{UserID: intPtr(1)}); err != nil {
		t.Fatalf("UpdateChallenge failed: %v", err)
	}

	got, err := s.ListChallengesByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListChallengesByUser failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 challenges for user 1, got %d", len(got))
	}
	ids := map[int]bool{}
	for _, ch := range got {
		if ch.UserID == nil || *ch.UserID != 1 {
			t.Fatalf("challenge %d does not belong to user 1", ch.ID)
		}
		if ids[ch.ID] {
			t.Fatalf("duplicate challenge %d in listing", ch.ID)
		}
		ids[ch.ID] = true
	}
	if !ids[a.ID] || !ids[orphan.ID] {
		t.Fatalf("expected challenges %d and %d, got %v", a.ID, orphan.ID, ids)
	}
}

func TestListJournalsByDate(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	j, err := s.CreateJournal(ctx, models.InsertJournal{Content: "today", Mood: strPtr("calm")})
	if err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}

	today := time.Date(j.CreatedAt.Year(), j.CreatedAt.Month(), j.CreatedAt.Day(), 0, 0, 0, 0, time.Local)
	got, err := s.ListJournalsByDate(ctx, today)
	if err != nil {
		t.Fatalf("ListJournalsByDate failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != j.ID {
		t.Fatalf("expected journal %d for today, got %v", j.ID, got)
	}

	yesterday := today.AddDate(0, 0, -1)
	got, err = s.ListJournalsByDate(ctx, yesterday)
	if err != nil {
		t.Fatalf("ListJournalsByDate failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no journals for yesterday, got %d", len(got))
	}
}

func TestJournalSummaryByJournal(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	sentiment := models.SentimentPositive
	sum, err := s.CreateJournalSummary(ctx, models.InsertJournalSummary{
		JournalID: intPtr(9),
		UserID:    intPtr(1),
		Summary:   "A good day",
		Sentiment: &sentiment,
		MoodTag:   strPtr("happy"),
	})
	if err != nil {
		t.Fatalf("CreateJournalSummary failed: %v", err)
	}

	got, err := s.GetJournalSummaryByJournal(ctx, 9)
	if err != nil {
		t.Fatalf("GetJournalSummaryByJournal failed: %v", err)
	}
	if got.ID != sum.ID {
		t.Fatalf("expected summary %d, got %d", sum.ID, got.ID)
	}

	byMood, err := s.ListJournalSummariesByMood(ctx, "happy")
	if err != nil {
		t.Fatalf("ListJournalSummariesByMood failed: %v", err)
	}
	if len(byMood) != 1 {
		t.Fatalf("expected 1 summary for mood happy, got %d", len(byMood))
	}

	if _, err := s.GetJournalSummaryByJournal(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing journal, got %v", err)
	}
}

func TestGardenPlantAtPositionZero(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	p, err := s.CreateGardenPlant(ctx, models.InsertGardenPlant{
		UserID:   intPtr(1),
		Type:     "fern",
		Name:     "First sprout",
		Position: intPtr(0),
	})
	if err != nil {
		t.Fatalf("CreateGardenPlant failed: %v", err)
	}
	if p.Position != 0 || p.Progress != 0 || p.IsBlooming {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	updated, err := s.UpdateGardenPlant(ctx, p.ID, models.GardenPlantUpdate{Progress: intPtr(60)})
	if err != nil {
		t.Fatalf("UpdateGardenPlant failed: %v", err)
	}
	if updated.Progress != 60 || updated.Position != 0 {
		t.Fatalf("update wrong: %+v", updated)
	}

	plants, err := s.ListGardenPlantsByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListGardenPlantsByUser failed: %v", err)
	}
	if len(plants) != 1 {
		t.Fatalf("expected 1 plant, got %d", len(plants))
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	s := NewMemStore()
	u := createUser(t, s, "fb-1", "ann@example.com", "ann")

	u.Coins = 9999

	stored, err := s.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if stored.Coins != 0 {
		t.Fatalf("mutation through returned pointer leaked into the store: coins=%d", stored.Coins)
	}
}
