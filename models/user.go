package models

import (
	"time"
)

// User represents a registered UnZone user. Identity itself lives with the
// external provider; we only keep the stable uid it hands us.
type User struct {
	ID                   int       `json:"id"`
	FirebaseUID          string    `json:"firebaseUid"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Username             string    `json:"username"`
	Coins                int       `json:"coins"`
	Streak               int       `json:"streak"`
	GardenLevel          int       `json:"gardenLevel"`
	TotalChallenges      int       `json:"totalChallenges"`
	ComfortProfile       *string   `json:"comfortProfile"`
	ChallengePreferences []string  `json:"challengePreferences"`
	DifficultyPreference int       `json:"difficultyPreference"`
	CreatedAt            time.Time `json:"createdAt"`
}

// InsertUser is the creation schema for a user. Optional fields are pointers
// so the store can tell "omitted" from "zero" when filling defaults.
type InsertUser struct {
	FirebaseUID          string   `json:"firebaseUid" binding:"required"`
	Email                string   `json:"email" binding:"required"`
	Name                 string   `json:"name" binding:"required"`
	Username             string   `json:"username" binding:"required"`
	Coins                *int     `json:"coins" binding:"omitempty,min=0"`
	Streak               *int     `json:"streak" binding:"omitempty,min=0"`
	GardenLevel          *int     `json:"gardenLevel" binding:"omitempty,min=1"`
	TotalChallenges      *int     `json:"totalChallenges" binding:"omitempty,min=0"`
	ComfortProfile       *string  `json:"comfortProfile"`
	ChallengePreferences []string `json:"challengePreferences"`
	DifficultyPreference *int     `json:"difficultyPreference" binding:"omitempty,oneof=1 2 3"`
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirebaseUID          *string  `json:"firebaseUid"`
	Email                *string  `json:"email"`
	Name                 *string  `json:"name"`
	Username             *string  `json:"username"`
	Coins                *int     `json:"coins"`
	Streak               *int     `json:"streak"`
	GardenLevel          *int     `json:"gardenLevel"`
	TotalChallenges      *int     `json:"totalChallenges"`
	ComfortProfile       *string  `json:"comfortProfile"`
	ChallengePreferences []string `json:"challengePreferences"`
	DifficultyPreference *int     `json:"difficultyPreference"`
}

// NewUser materializes an insert payload into a user with declared defaults
// filled. The store assigns ID and CreatedAt.
func (i InsertUser) NewUser() User {
	u := User{
		FirebaseUID:          i.FirebaseUID,
		Email:                i.Email,
		Name:                 i.Name,
		Username:             i.Username,
		GardenLevel:          1,
		DifficultyPreference: 2,
		ComfortProfile:       i.ComfortProfile,
		ChallengePreferences: i.ChallengePreferences,
	}
	if i.Coins != nil {
		u.Coins = *i.Coins
	}
	if i.Streak != nil {
		u.Streak = *i.Streak
	}
	if i.GardenLevel != nil {
		u.GardenLevel = *i.GardenLevel
	}
	if i.TotalChallenges != nil {
		u.TotalChallenges = *i.TotalChallenges
	}
	if i.DifficultyPreference != nil {
		u.DifficultyPreference = *i.DifficultyPreference
	}
	return u
}

// Apply merges the non-nil fields of the update into the user.
func (u *User) Apply(upd UserUpdate) {
	if upd.FirebaseUID != nil {
		u.FirebaseUID = *upd.FirebaseUID
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Coins != nil {
		u.Coins = *upd.Coins
	}
	if upd.Streak != nil {
		u.Streak = *upd.Streak
	}
	if upd.GardenLevel != nil {
		u.GardenLevel = *upd.GardenLevel
	}
	if upd.TotalChallenges != nil {
		u.TotalChallenges = *upd.TotalChallenges
	}
	if upd.ComfortProfile != nil {
		u.ComfortProfile = upd.ComfortProfile
	}
	if upd.ChallengePreferences != nil {
		u.ChallengePreferences = upd.ChallengePreferences
	}
	if upd.DifficultyPreference != nil {
		u.DifficultyPreference = *upd.DifficultyPreference
	}
}
