package services

import (
	"strings"

	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
)

type SearchServiceInterface interface {
	Search(db *database.Database, userID uuid.UUID, text string) (models.SearchResult, error)
}

type SearchService struct{}

func NewSearchService() SearchServiceInterface {
	return &SearchService{}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring pattern for LIKE ... ESCAPE '\'.
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

// Search matches notebook names, tag names and notes by title, body or tag
// name. Only the user's own resources are considered.
func (s *SearchService) Search(db *database.Database, userID uuid.UUID, text string) (models.SearchResult, error) {
	text = strings.TrimSpace(text)
	if err := checkVar("text", text, "min=2"); err != nil {
		return models.SearchResult{}, err
	}
	pattern := likePattern(text)

	result := models.SearchResult{
		Notebooks: []models.Notebook{},
		Tags:      []models.Tag{},
		Notes:     []models.NoteSummary{},
	}

	if err := db.DB.
		Where("user_id = ? AND LOWER(name) LIKE ? ESCAPE '\\'", userID, pattern).
		Order("name, created_at").
		Find(&result.Notebooks).Error; err != nil {
		return models.SearchResult{}, err
	}

	if err := db.DB.
		Joins("JOIN notebooks ON notebooks.id = tags.notebook_id").
		Where("notebooks.user_id = ? AND LOWER(tags.name) LIKE ? ESCAPE '\\'", userID, pattern).
		Order("tags.name, tags.created_at").
		Find(&result.Tags).Error; err != nil {
		return models.SearchResult{}, err
	}

	var notes []models.Note
	if err := db.DB.Preload("Tags").
		Joins("JOIN notebooks ON notebooks.id = notes.notebook_id").
		Where("notebooks.user_id = ?", userID).
		Where(`(LOWER(notes.title) LIKE ? ESCAPE '\' OR LOWER(notes.body) LIKE ? ESCAPE '\' OR EXISTS (
			SELECT 1 FROM note_tags JOIN tags ON tags.id = note_tags.tag_id
			WHERE note_tags.note_id = notes.id AND LOWER(tags.name) LIKE ? ESCAPE '\'))`,
			pattern, pattern, pattern).
		Order("notes.created_at, notes.id").
		Find(&notes).Error; err != nil {
		return models.SearchResult{}, err
	}
	for i := range notes {
		result.Notes = append(result.Notes, notes[i].Summary())
	}

	return result, nil
}
