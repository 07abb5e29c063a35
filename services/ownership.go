package services

import (
	"errors"

	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parseID turns a malformed id into ErrForbidden, like a missing row.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrForbidden
	}
	return parsed, nil
}

func findOwnedNotebook(tx *gorm.DB, userID uuid.UUID, id string) (models.Notebook, error) {
	notebookID, err := parseID(id)
	if err != nil {
		return models.Notebook{}, err
	}

	var notebook models.Notebook
	if err := tx.Where("id = ? AND user_id = ?", notebookID, userID).First(&notebook).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notebook{}, ErrForbidden
		}
		return models.Notebook{}, err
	}
	return notebook, nil
}

// findOwnedNote loads a note with its tags, provided its notebook belongs to
// userID.
func findOwnedNote(tx *gorm.DB, userID uuid.UUID, id string) (models.Note, error) {
	noteID, err := parseID(id)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	err = tx.Preload("Tags").
		Joins("JOIN notebooks ON notebooks.id = notes.notebook_id").
		Where("notes.id = ? AND notebooks.user_id = ?", noteID, userID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrForbidden
		}
		return models.Note{}, err
	}
	return note, nil
}

func findOwnedTag(tx *gorm.DB, userID uuid.UUID, id string) (models.Tag, error) {
	tagID, err := parseID(id)
	if err != nil {
		return models.Tag{}, err
	}

	var tag models.Tag
	err = tx.Joins("JOIN notebooks ON notebooks.id = tags.notebook_id").
		Where("tags.id = ? AND notebooks.user_id = ?", tagID, userID).
		First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tag{}, ErrForbidden
		}
		return models.Tag{}, err
	}
	return tag, nil
}
