package models

import (
	"time"

	"github.com/google/uuid"
)

// Notebook is owned by exactly one user and holds that user's notes and tags.
type Notebook struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_ts"`
	UpdatedAt time.Time `gorm:"not null" json:"last_modified_ts"`
}
