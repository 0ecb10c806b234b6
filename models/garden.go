package models

import (
	"time"
)

// GardenPlant is a visual progress token in a user's garden. Position is
// intended to be unique per user but is not enforced.
type GardenPlant struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"userId"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Progress   int       `json:"progress"`
	IsBlooming bool      `json:"isBlooming"`
	Position   int       `json:"position"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// InsertGardenPlant is the creation schema for a garden plant. Position is a
// pointer so a plant can legitimately sit at position 0.
type InsertGardenPlant struct {
	UserID     *int   `json:"userId"`
	Type       string `json:"type" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Progress   *int   `json:"progress" binding:"omitempty,min=0,max=100"`
	IsBlooming *bool  `json:"isBlooming"`
	Position   *int   `json:"position" binding:"required"`
}

// GardenPlantUpdate is a partial update; nil fields are left untouched.
type GardenPlantUpdate struct {
	UserID     *int    `json:"userId"`
	Type       *string `json:"type"`
	Name       *string `json:"name"`
	Progress   *int    `json:"progress"`
	IsBlooming *bool   `json:"isBlooming"`
	Position   *int    `json:"position"`
}

// NewGardenPlant materializes an insert payload with defaults filled.
func (i InsertGardenPlant) NewGardenPlant() GardenPlant {
	p := GardenPlant{
		UserID: i.UserID,
		Type:   i.Type,
		Name:   i.Name,
	}
	if i.Progress != nil {
		p.Progress = *i.Progress
	}
	if i.IsBlooming != nil {
		p.IsBlooming = *i.IsBlooming
	}
	if i.Position != nil {
		p.Position = *i.Position
	}
	return p
}

// Apply merges the non-nil fields of the update into the plant.
func (p *GardenPlant) Apply(upd GardenPlantUpdate) {
	if upd.UserID != nil {
		p.UserID = upd.UserID
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Progress != nil {
		p.Progress = *upd.Progress
	}
	if upd.IsBlooming != nil {
		p.IsBlooming = *upd.IsBlooming
	}
	if upd.Position != nil {
		p.Position = *upd.Position
	}
}

// Achievement is a create-only badge; there is no update or delete.
type Achievement struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// InsertAchievement is the creation schema for an achievement.
type InsertAchievement struct {
	UserID      *int   `json:"userId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}

// NewAchievement materializes an insert payload.
func (i InsertAchievement) NewAchievement() Achievement {
	return Achievement{
		UserID:      i.UserID,
		Title:       i.Title,
		Description: i.Description,
		Icon:        i.Icon,
	}
}
