package services

import (
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotebookServiceInterface interface {
	CreateNotebook(db *database.Database, userID uuid.UUID, notebookData map[string]interface{}) (models.Notebook, error)
	GetNotebookById(db *database.Database, userID uuid.UUID, id string) (models.Notebook, error)
	UpdateNotebook(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Notebook, error)
	DeleteNotebook(db *database.Database, userID uuid.UUID, id string) error
	ListNotebooksByUser(db *database.Database, userID uuid.UUID) ([]models.Notebook, error)
}

type NotebookService struct {
	now func() time.Time
}

func NewNotebookService() NotebookServiceInterface {
	return &NotebookService{now: func() time.Time { return time.Now().UTC() }}
}

func notebookName(data map[string]interface{}) (string, error) {
	if err := rejectUnknownFields(data, "name"); err != nil {
		return "", err
	}
	name, err := requiredStringField(data, "name")
	if err != nil {
		return "", err
	}
	if err := checkVar("name", name, "max=200"); err != nil {
		return "", err
	}
	return name, nil
}

func (s *NotebookService) CreateNotebook(db *database.Database, userID uuid.UUID, notebookData map[string]interface{}) (models.Notebook, error) {
	name, err := notebookName(notebookData)
	if err != nil {
		return models.Notebook{}, err
	}

	now := s.now()
	notebook := models.Notebook{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&notebook).Error; err != nil {
			return err
		}
		return recordNotebookEvent(tx, broker.NotebookCreated, "create", notebook)
	})
	if err != nil {
		return models.Notebook{}, err
	}

	return notebook, nil
}

func (s *NotebookService) GetNotebookById(db *database.Database, userID uuid.UUID, id string) (models.Notebook, error) {
	return findOwnedNotebook(db.DB, userID, id)
}

func (s *NotebookService) UpdateNotebook(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Notebook, error) {
	name, err := notebookName(updatedData)
	if err != nil {
		return models.Notebook{}, err
	}

	var notebook models.Notebook
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		notebook, err = findOwnedNotebook(tx, userID, id)
		if err != nil {
			return err
		}

		notebook.Name = name
		notebook.UpdatedAt = s.now()
		if err := tx.Model(&models.Notebook{}).Where("id = ?", notebook.ID).Updates(map[string]interface{}{
			"name":       notebook.Name,
			"updated_at": notebook.UpdatedAt,
		}).Error; err != nil {
			return err
		}

		return recordNotebookEvent(tx, broker.NotebookUpdated, "update", notebook)
	})
	if err != nil {
		return models.Notebook{}, err
	}

	return notebook, nil
}

// DeleteNotebook removes the notebook together with its notes, its tags and
// every tag association between them.
func (s *NotebookService) DeleteNotebook(db *database.Database, userID uuid.UUID, id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		notebook, err := findOwnedNotebook(tx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM note_tags WHERE note_id IN (SELECT id FROM notes WHERE notebook_id = ?) OR tag_id IN (SELECT id FROM tags WHERE notebook_id = ?)",
			notebook.ID, notebook.ID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("notebook_id = ?", notebook.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notebook_id = ?", notebook.ID).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Notebook{}, "id = ?", notebook.ID).Error; err != nil {
			return err
		}

		return recordNotebookEvent(tx, broker.NotebookDeleted, "delete", notebook)
	})
}

func (s *NotebookService) ListNotebooksByUser(db *database.Database, userID uuid.UUID) ([]models.Notebook, error) {
	notebooks := []models.Notebook{}
	if err := db.DB.Where("user_id = ?", userID).Order("name, created_at").Find(&notebooks).Error; err != nil {
		return nil, err
	}
	return notebooks, nil
}

func recordNotebookEvent(tx *gorm.DB, eventType broker.EventType, operation string, notebook models.Notebook) error {
	event, err := models.NewEvent(
		string(eventType),
		"notebook",
		operation,
		notebook.UserID.String(),
		map[string]interface{}{
			"notebook_id": notebook.ID.String(),
			"user_id":     notebook.UserID.String(),
			"name":        notebook.Name,
		},
	)
	if err != nil {
		return err
	}
	return tx.Create(event).Error
}
