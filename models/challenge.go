package models

import (
	"time"
)

// Difficulty labels a challenge's intensity.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Challenge is a comfort-zone-stretching activity assigned to a user.
type Challenge struct {
	ID          int        `json:"id"`
	UserID      *int       `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Reward      int        `json:"reward"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// InsertChallenge is the creation schema for a challenge.
type InsertChallenge struct {
	UserID      *int       `json:"userId"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Difficulty  Difficulty `json:"difficulty" binding:"required,oneof=EASY MEDIUM HARD"`
	Reward      *int       `json:"reward" binding:"omitempty,min=0"`
	IsCompleted *bool      `json:"isCompleted"`
}

// ChallengeUpdate is a partial update; nil fields are left untouched.
type ChallengeUpdate struct {
	UserID      *int        `json:"userId"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Category    *string     `json:"category"`
	Difficulty  *Difficulty `json:"difficulty"`
	Reward      *int        `json:"reward"`
	IsCompleted *bool       `json:"isCompleted"`
	CompletedAt *time.Time  `json:"completedAt"`
}

// NewChallenge materializes an insert payload with declared defaults filled
// (reward 25, not completed). The store assigns ID and CreatedAt.
func (i InsertChallenge) NewChallenge() Challenge {
	ch := Challenge{
		UserID:      i.UserID,
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		Difficulty:  i.Difficulty,
		Reward:      25,
	}
	if i.Reward != nil {
		ch.Reward = *i.Reward
	}
	if i.IsCompleted != nil {
		ch.IsCompleted = *i.IsCompleted
	}
	return ch
}

// Apply merges the non-nil fields of the update into the challenge.
func (ch *Challenge) Apply(upd ChallengeUpdate) {
	if upd.UserID != nil {
		ch.UserID = upd.UserID
	}
	if upd.Title != nil {
		ch.Title = *upd.Title
	}
	if upd.Description != nil {
		ch.Description = *upd.Description
	}
	if upd.Category != nil {
		ch.Category = *upd.Category
	}
	if upd.Difficulty != nil {
		ch.Difficulty = *upd.Difficulty
	}
	if upd.Reward != nil {
		ch.Reward = *upd.Reward
	}
	if upd.IsCompleted != nil {
		ch.IsCompleted = *upd.IsCompleted
	}
	if upd.CompletedAt != nil {
		ch.CompletedAt = upd.CompletedAt
	}
}
