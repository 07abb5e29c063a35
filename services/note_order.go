package services

import (
	"slices"
	"sort"

	"notelist-app/notelist/models"
)

// OrderNotes sorts notes in place and returns them. By default notes keep
// creation order, oldest first, and ascending is ignored. With
// byLastModified they are sorted stably by last modification, ties keeping
// creation order; descending is the exact reverse of ascending.
func OrderNotes(notes []models.Note, byLastModified, ascending bool) []models.Note {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})

	if !byLastModified {
		return notes
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.Before(notes[j].UpdatedAt)
	})
	if !ascending {
		slices.Reverse(notes)
	}
	return notes
}
