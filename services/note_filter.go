package services

import (
	"notelist-app/notelist/models"
)

// Note list filter fields.
const (
	filterActive  = "active"
	filterTags    = "tags"
	filterNoTags  = "no_tags"
	filterLastMod = "last_mod"
	filterAsc     = "asc"
)

// NoteFilter selects and orders the notes of a notebook. Active nil means no
// filtering on the active flag; Tags nil means no tag criterion at all, while
// an empty non-nil Tags matches only through NoTags.
type NoteFilter struct {
	Active  *bool
	Tags    []string
	NoTags  bool
	LastMod bool
	Asc     bool
}

// ParseNoteFilter validates a decoded JSON filter object. Unknown keys and
// values of the wrong type are validation errors.
func ParseNoteFilter(data map[string]interface{}) (NoteFilter, error) {
	filter := NoteFilter{Asc: true}

	if err := rejectUnknownFields(data, filterActive, filterTags, filterNoTags, filterLastMod, filterAsc); err != nil {
		return NoteFilter{}, err
	}

	active, present, err := boolField(data, filterActive)
	if err != nil {
		return NoteFilter{}, err
	}
	if present {
		filter.Active = &active
	}

	tags, _, err := stringListField(data, filterTags)
	if err != nil {
		return NoteFilter{}, err
	}
	filter.Tags = tags

	for key, dst := range map[string]*bool{
		filterNoTags:  &filter.NoTags,
		filterLastMod: &filter.LastMod,
		filterAsc:     &filter.Asc,
	} {
		value, present, err := boolField(data, key)
		if err != nil {
			return NoteFilter{}, err
		}
		if present {
			*dst = value
		}
	}

	return filter, nil
}

// NotePredicate reports whether a note passes a filter.
type NotePredicate func(note *models.Note) bool

// BuildNotePredicate composes
//
//	(active matches, if given) AND (tags absent OR any tag listed OR (no_tags AND note untagged))
//
// key normalizes tag names on both sides of the comparison.
func BuildNotePredicate(filter NoteFilter, key func(string) string) NotePredicate {
	var wanted map[string]struct{}
	if filter.Tags != nil {
		wanted = make(map[string]struct{}, len(filter.Tags))
		for _, name := range filter.Tags {
			wanted[key(name)] = struct{}{}
		}
	}

	return func(note *models.Note) bool {
		if filter.Active != nil && note.Active != *filter.Active {
			return false
		}
		if wanted == nil {
			return true
		}
		if filter.NoTags && len(note.Tags) == 0 {
			return true
		}
		for _, tag := range note.Tags {
			if _, ok := wanted[key(tag.Name)]; ok {
				return true
			}
		}
		return false
	}
}

// FilterNotes keeps the notes accepted by pred, preserving their order.
func FilterNotes(notes []models.Note, pred NotePredicate) []models.Note {
	kept := make([]models.Note, 0, len(notes))
	for i := range notes {
		if pred(&notes[i]) {
			kept = append(kept, notes[i])
		}
	}
	return kept
}
