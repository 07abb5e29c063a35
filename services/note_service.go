package services

import (
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Writable note fields.
const (
	noteNotebookID = "notebook_id"
	noteActive     = "active"
	noteTitle      = "title"
	noteBody       = "body"
	noteTags       = "tags"
)

type NoteServiceInterface interface {
	ListNotes(db *database.Database, userID uuid.UUID, notebookID string, filterData map[string]interface{}) ([]models.NoteSummary, error)
	GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.NoteDetail, error)
	CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error)
	UpdateNote(db *database.Database, userID uuid.UUID, id string, noteData map[string]interface{}) (models.Note, error)
	DeleteNote(db *database.Database, userID uuid.UUID, id string) error
}

type NoteService struct {
	tags *TagResolver
	now  func() time.Time
}

// NewNoteService creates a new instance of NoteService
func NewNoteService(tags *TagResolver) NoteServiceInterface {
	return &NoteService{
		tags: tags,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// noteInput is the validated, typed form of a note write request. Pointer
// and present flags keep "absent" apart from "null".
type noteInput struct {
	active       *bool
	title        *string
	titleSet     bool
	body         *string
	bodySet      bool
	tags         []string
	tagsSupplied bool
}

func parseNoteInput(noteData map[string]interface{}) (noteInput, error) {
	var in noteInput

	active, present, err := boolField(noteData, noteActive)
	if err != nil {
		return noteInput{}, err
	}
	if present {
		in.active = &active
	}

	if in.title, in.titleSet, err = nullableStringField(noteData, noteTitle); err != nil {
		return noteInput{}, err
	}
	if in.title != nil {
		if err := checkVar(noteTitle, *in.title, "max=200"); err != nil {
			return noteInput{}, err
		}
	}

	if in.body, in.bodySet, err = nullableStringField(noteData, noteBody); err != nil {
		return noteInput{}, err
	}

	if in.tags, in.tagsSupplied, err = stringListField(noteData, noteTags); err != nil {
		return noteInput{}, err
	}
	if _, err := trimmedNames(noteTags, in.tags); err != nil {
		return noteInput{}, err
	}

	return in, nil
}

func (s *NoteService) ListNotes(db *database.Database, userID uuid.UUID, notebookID string, filterData map[string]interface{}) ([]models.NoteSummary, error) {
	filter, err := ParseNoteFilter(filterData)
	if err != nil {
		return nil, err
	}

	notebook, err := findOwnedNotebook(db.DB, userID, notebookID)
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	if err := db.DB.Preload("Tags").
		Where("notebook_id = ?", notebook.ID).
		Order("created_at, id").
		Find(&notes).Error; err != nil {
		return nil, err
	}

	notes = FilterNotes(notes, BuildNotePredicate(filter, s.tags.Key))
	notes = OrderNotes(notes, filter.LastMod, filter.Asc)

	summaries := make([]models.NoteSummary, 0, len(notes))
	for i := range notes {
		summaries = append(summaries, notes[i].Summary())
	}
	return summaries, nil
}

func (s *NoteService) GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.NoteDetail, error) {
	note, err := findOwnedNote(db.DB, userID, id)
	if err != nil {
		return models.NoteDetail{}, err
	}
	return note.Detail(), nil
}

func (s *NoteService) CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error) {
	if err := rejectUnknownFields(noteData, noteNotebookID, noteActive, noteTitle, noteBody, noteTags); err != nil {
		return models.Note{}, err
	}
	notebookID, err := requiredStringField(noteData, noteNotebookID)
	if err != nil {
		return models.Note{}, err
	}
	in, err := parseNoteInput(noteData)
	if err != nil {
		return models.Note{}, err
	}

	actorID := userID.String()
	var note models.Note

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		notebook, err := findOwnedNotebook(tx, userID, notebookID)
		if err != nil {
			return err
		}

		now := s.now()
		note = models.Note{
			ID:         uuid.New(),
			NotebookID: notebook.ID,
			Title:      in.title,
			Body:       in.body,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if in.active != nil {
			note.Active = *in.active
		}

		var tags []models.Tag
		if in.tagsSupplied {
			resolved, err := s.tags.Resolve(tx, notebook.ID, in.tags, actorID)
			if err != nil {
				return err
			}
			tags = uniqueTags(resolved)
		}

		if err := tx.Omit(clause.Associations).Create(&note).Error; err != nil {
			return err
		}
		if err := replaceNoteTags(tx, note.ID, tags); err != nil {
			return err
		}
		note.Tags = tags

		return recordNoteEvent(tx, broker.NoteCreated, "create", actorID, note)
	})
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) UpdateNote(db *database.Database, userID uuid.UUID, id string, noteData map[string]interface{}) (models.Note, error) {
	if _, ok := noteData[noteNotebookID]; ok {
		return models.Note{}, invalidField(noteNotebookID, "a note cannot be moved to another notebook")
	}
	if err := rejectUnknownFields(noteData, noteActive, noteTitle, noteBody, noteTags); err != nil {
		return models.Note{}, err
	}
	in, err := parseNoteInput(noteData)
	if err != nil {
		return models.Note{}, err
	}

	actorID := userID.String()
	var note models.Note

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		note, err = findOwnedNote(tx, userID, id)
		if err != nil {
			return err
		}

		if in.tagsSupplied {
			resolved, err := s.tags.Resolve(tx, note.NotebookID, in.tags, actorID)
			if err != nil {
				return err
			}
			tags := uniqueTags(resolved)
			if err := replaceNoteTags(tx, note.ID, tags); err != nil {
				return err
			}
			note.Tags = tags
		}

		updates := map[string]interface{}{"updated_at": s.now()}
		if in.active != nil {
			updates["active"] = *in.active
		}
		if in.titleSet {
			updates["title"] = in.title
		}
		if in.bodySet {
			updates["body"] = in.body
		}

		if err := tx.Model(&models.Note{}).Where("id = ?", note.ID).Updates(updates).Error; err != nil {
			return err
		}

		note.UpdatedAt = updates["updated_at"].(time.Time)
		if in.active != nil {
			note.Active = *in.active
		}
		if in.titleSet {
			note.Title = in.title
		}
		if in.bodySet {
			note.Body = in.body
		}

		return recordNoteEvent(tx, broker.NoteUpdated, "update", actorID, note)
	})
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) DeleteNote(db *database.Database, userID uuid.UUID, id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		note, err := findOwnedNote(tx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", note.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Note{}, "id = ?", note.ID).Error; err != nil {
			return err
		}

		return recordNoteEvent(tx, broker.NoteDeleted, "delete", userID.String(), note)
	})
}

// replaceNoteTags makes tags the complete tag set of the note.
func replaceNoteTags(tx *gorm.DB, noteID uuid.UUID, tags []models.Tag) error {
	if err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", noteID).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, map[string]interface{}{
			"note_id": noteID,
			"tag_id":  tag.ID,
		})
	}
	return tx.Table("note_tags").Create(rows).Error
}

func recordNoteEvent(tx *gorm.DB, eventType broker.EventType, operation, actorID string, note models.Note) error {
	event, err := models.NewEvent(
		string(eventType),
		"note",
		operation,
		actorID,
		map[string]interface{}{
			"note_id":          note.ID.String(),
			"notebook_id":      note.NotebookID.String(),
			"active":           note.Active,
			"tags":             note.TagNames(),
			"last_modified_ts": note.UpdatedAt,
		},
	)
	if err != nil {
		return err
	}
	return tx.Create(event).Error
}
