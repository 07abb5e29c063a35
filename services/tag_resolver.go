package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagResolver maps requested tag names to the tags of a notebook, creating
// the ones that do not exist yet. It always runs inside the caller's
// transaction so implicitly created tags share the fate of the note write.
type TagResolver struct {
	caseSensitive bool
	now           func() time.Time
}

func NewTagResolver(caseSensitive bool) *TagResolver {
	return &TagResolver{
		caseSensitive: caseSensitive,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Key returns the comparison key of a tag name: the trimmed name, case
// folded when the resolver is case-insensitive.
func (r *TagResolver) Key(name string) string {
	name = strings.TrimSpace(name)
	if r.caseSensitive {
		return name
	}
	// A Caser is stateful, so one is built per call.
	return cases.Fold().String(name)
}

// Resolve returns one tag per requested name, in the requested order.
// Repeated names resolve to the same tag each time they appear.
func (r *TagResolver) Resolve(tx *gorm.DB, notebookID uuid.UUID, names []string, actorID string) ([]models.Tag, error) {
	trimmed, err := trimmedNames("tags", names)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.Tag, 0, len(trimmed))
	seen := make(map[string]models.Tag, len(trimmed))

	for _, name := range trimmed {
		key := r.Key(name)
		if tag, ok := seen[key]; ok {
			resolved = append(resolved, tag)
			continue
		}

		tag, err := r.findOrCreate(tx, notebookID, name, key, actorID)
		if err != nil {
			return nil, err
		}
		seen[key] = tag
		resolved = append(resolved, tag)
	}

	return resolved, nil
}

func (r *TagResolver) findOrCreate(tx *gorm.DB, notebookID uuid.UUID, name, key, actorID string) (models.Tag, error) {
	tag, found, err := r.find(tx, notebookID, key)
	if err != nil || found {
		return tag, err
	}

	tag, err = r.create(tx, notebookID, name, key, actorID)
	if !errors.Is(err, ErrTagConflict) {
		return tag, err
	}

	zap.L().Debug("tag created concurrently, reusing existing tag",
		zap.String("notebook_id", notebookID.String()),
		zap.String("name", name))

	tag, found, err = r.find(tx, notebookID, key)
	if err != nil {
		return models.Tag{}, err
	}
	if !found {
		return models.Tag{}, fmt.Errorf("tag %q conflicted but could not be fetched", name)
	}
	return tag, nil
}

func (r *TagResolver) find(tx *gorm.DB, notebookID uuid.UUID, key string) (models.Tag, bool, error) {
	var tags []models.Tag
	if err := tx.Where("notebook_id = ? AND name_key = ?", notebookID, key).Limit(1).Find(&tags).Error; err != nil {
		return models.Tag{}, false, err
	}
	if len(tags) == 0 {
		return models.Tag{}, false, nil
	}
	return tags[0], true, nil
}

// create inserts a new uncolored tag. A row already holding the same
// (notebook_id, name_key) makes it return ErrTagConflict.
func (r *TagResolver) create(tx *gorm.DB, notebookID uuid.UUID, name, key, actorID string) (models.Tag, error) {
	now := r.now()
	tag := models.Tag{
		ID:         uuid.New(),
		NotebookID: notebookID,
		Name:       name,
		NameKey:    key,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "notebook_id"}, {Name: "name_key"}},
		DoNothing: true,
	}).Create(&tag)
	if result.Error != nil {
		return models.Tag{}, result.Error
	}
	// DO NOTHING reports a conflict as zero affected rows.
	if result.RowsAffected == 0 {
		return models.Tag{}, ErrTagConflict
	}

	if err := recordTagEvent(tx, broker.TagCreated, "create", actorID, tag); err != nil {
		return models.Tag{}, err
	}

	return tag, nil
}

// recordTagEvent writes a tag outbox event inside tx.
func recordTagEvent(tx *gorm.DB, eventType broker.EventType, operation, actorID string, tag models.Tag) error {
	event, err := models.NewEvent(
		string(eventType),
		"tag",
		operation,
		actorID,
		map[string]interface{}{
			"tag_id":      tag.ID.String(),
			"notebook_id": tag.NotebookID.String(),
			"name":        tag.Name,
		},
	)
	if err != nil {
		return err
	}
	return tx.Create(event).Error
}

// uniqueTags drops repeated tags, keeping the first occurrence.
func uniqueTags(tags []models.Tag) []models.Tag {
	seen := make(map[uuid.UUID]struct{}, len(tags))
	unique := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		unique = append(unique, tag)
	}
	return unique
}
