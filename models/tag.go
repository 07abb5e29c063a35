package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a label scoped to one notebook. NameKey is the normalized form of
// Name used for lookups; (NotebookID, NameKey) is unique. Case folding can
// expand a character up to three, so NameKey is sized for that.
type Tag struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NotebookID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_notebook_name_key,priority:1" json:"notebook_id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	NameKey    string    `gorm:"size:600;not null;uniqueIndex:idx_tags_notebook_name_key,priority:2" json:"-"`
	Color      *string   `gorm:"size:7" json:"color"`
	CreatedAt  time.Time `gorm:"not null" json:"created_ts"`
	UpdatedAt  time.Time `gorm:"not null" json:"last_modified_ts"`
}
