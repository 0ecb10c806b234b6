package models

import (
	"time"

	"github.com/google/uuid"
)

// File records metadata for an uploaded blob (avatars). The bytes themselves
// live in the storage backend under StoragePath.
type File struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"userId"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storagePath"`
	CreatedAt   time.Time `json:"createdAt"`
}
