package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NotebookID uuid.UUID `gorm:"type:uuid;not null;index" json:"notebook_id"`
	Title      *string   `gorm:"size:200" json:"title"`
	Body       *string   `gorm:"type:text" json:"body"`
	Active     bool      `gorm:"not null" json:"active"`
	Tags       []Tag     `gorm:"many2many:note_tags;" json:"-"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_ts"`
	UpdatedAt  time.Time `gorm:"not null" json:"last_modified_ts"`
}

// NoteSummary is the list view of a note. It never carries the body.
type NoteSummary struct {
	ID             uuid.UUID `json:"id"`
	NotebookID     uuid.UUID `json:"notebook_id"`
	Active         bool      `json:"active"`
	Title          *string   `json:"title"`
	CreatedAt      time.Time `json:"created_ts"`
	LastModifiedAt time.Time `json:"last_modified_ts"`
	Tags           []string  `json:"tags"`
}

// NoteDetail is the single-note view, body included.
type NoteDetail struct {
	NoteSummary
	Body *string `json:"body"`
}

// TagNames returns the names of the note's tags in alphabetical order.
func (n *Note) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, tag := range n.Tags {
		names = append(names, tag.Name)
	}
	slices.Sort(names)
	return names
}

func (n *Note) Summary() NoteSummary {
	return NoteSummary{
		ID:             n.ID,
		NotebookID:     n.NotebookID,
		Active:         n.Active,
		Title:          n.Title,
		CreatedAt:      n.CreatedAt,
		LastModifiedAt: n.UpdatedAt,
		Tags:           n.TagNames(),
	}
}

func (n *Note) Detail() NoteDetail {
	return NoteDetail{
		NoteSummary: n.Summary(),
		Body:        n.Body,
	}
}
