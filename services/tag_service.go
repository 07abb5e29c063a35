package services

import (
	"errors"
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagServiceInterface interface {
	CreateTag(db *database.Database, userID uuid.UUID, tagData map[string]interface{}) (models.Tag, error)
	GetTagById(db *database.Database, userID uuid.UUID, id string) (models.Tag, error)
	UpdateTag(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Tag, error)
	DeleteTag(db *database.Database, userID uuid.UUID, id string) error
	ListTags(db *database.Database, userID uuid.UUID, notebookID string) ([]models.Tag, error)
}

type TagService struct {
	tags *TagResolver
	now  func() time.Time
}

func NewTagService(tags *TagResolver) TagServiceInterface {
	return &TagService{
		tags: tags,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var errTagNameTaken = invalidField("name", "a tag with this name already exists in the notebook")

func tagName(data map[string]interface{}) (string, error) {
	name, err := requiredStringField(data, "name")
	if err != nil {
		return "", err
	}
	if err := checkVar("name", name, "max=200"); err != nil {
		return "", err
	}
	return name, nil
}

func tagColor(data map[string]interface{}) (*string, bool, error) {
	color, present, err := nullableStringField(data, "color")
	if err != nil || color == nil {
		return color, present, err
	}
	if err := checkVar("color", *color, "hexcolor,max=7"); err != nil {
		return nil, true, err
	}
	return color, true, nil
}

// ensureNameFree fails when another tag of the notebook already uses key.
func (s *TagService) ensureNameFree(tx *gorm.DB, notebookID uuid.UUID, key string, self uuid.UUID) error {
	existing, found, err := s.tags.find(tx, notebookID, key)
	if err != nil {
		return err
	}
	if found && existing.ID != self {
		return errTagNameTaken
	}
	return nil
}

func (s *TagService) CreateTag(db *database.Database, userID uuid.UUID, tagData map[string]interface{}) (models.Tag, error) {
	if err := rejectUnknownFields(tagData, "notebook_id", "name", "color"); err != nil {
		return models.Tag{}, err
	}
	notebookID, err := requiredStringField(tagData, "notebook_id")
	if err != nil {
		return models.Tag{}, err
	}
	name, err := tagName(tagData)
	if err != nil {
		return models.Tag{}, err
	}
	color, _, err := tagColor(tagData)
	if err != nil {
		return models.Tag{}, err
	}

	var tag models.Tag
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		notebook, err := findOwnedNotebook(tx, userID, notebookID)
		if err != nil {
			return err
		}

		key := s.tags.Key(name)
		if err := s.ensureNameFree(tx, notebook.ID, key, uuid.Nil); err != nil {
			return err
		}

		now := s.now()
		tag = models.Tag{
			ID:         uuid.New(),
			NotebookID: notebook.ID,
			Name:       name,
			NameKey:    key,
			Color:      color,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Create(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errTagNameTaken
			}
			return err
		}

		return recordTagEvent(tx, broker.TagCreated, "create", userID.String(), tag)
	})
	if err != nil {
		return models.Tag{}, err
	}

	return tag, nil
}

func (s *TagService) GetTagById(db *database.Database, userID uuid.UUID, id string) (models.Tag, error) {
	return findOwnedTag(db.DB, userID, id)
}

func (s *TagService) UpdateTag(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Tag, error) {
	if _, ok := updatedData["notebook_id"]; ok {
		return models.Tag{}, invalidField("notebook_id", "a tag cannot be moved to another notebook")
	}
	if err := rejectUnknownFields(updatedData, "name", "color"); err != nil {
		return models.Tag{}, err
	}

	updates := map[string]interface{}{}
	var name string
	if _, ok := updatedData["name"]; ok {
		n, err := tagName(updatedData)
		if err != nil {
			return models.Tag{}, err
		}
		name = n
	}
	color, colorSet, err := tagColor(updatedData)
	if err != nil {
		return models.Tag{}, err
	}

	var tag models.Tag
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		tag, err = findOwnedTag(tx, userID, id)
		if err != nil {
			return err
		}

		if name != "" {
			key := s.tags.Key(name)
			if err := s.ensureNameFree(tx, tag.NotebookID, key, tag.ID); err != nil {
				return err
			}
			tag.Name, tag.NameKey = name, key
			updates["name"], updates["name_key"] = name, key
		}
		if colorSet {
			tag.Color = color
			updates["color"] = color
		}
		tag.UpdatedAt = s.now()
		updates["updated_at"] = tag.UpdatedAt

		if err := tx.Model(&models.Tag{}).Where("id = ?", tag.ID).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errTagNameTaken
			}
			return err
		}

		return recordTagEvent(tx, broker.TagUpdated, "update", userID.String(), tag)
	})
	if err != nil {
		return models.Tag{}, err
	}

	return tag, nil
}

// DeleteTag detaches the tag from every note, then removes it. The notes stay.
func (s *TagService) DeleteTag(db *database.Database, userID uuid.UUID, id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		tag, err := findOwnedTag(tx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM note_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Tag{}, "id = ?", tag.ID).Error; err != nil {
			return err
		}

		return recordTagEvent(tx, broker.TagDeleted, "delete", userID.String(), tag)
	})
}

func (s *TagService) ListTags(db *database.Database, userID uuid.UUID, notebookID string) ([]models.Tag, error) {
	notebook, err := findOwnedNotebook(db.DB, userID, notebookID)
	if err != nil {
		return nil, err
	}

	tags := []models.Tag{}
	if err := db.DB.Where("notebook_id = ?", notebook.ID).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
