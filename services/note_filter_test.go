package services

import (
	"testing"

	"notelist-app/notelist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteWithTags(active bool, names ...string) models.Note {
	note := models.Note{Active: active}
	for _, name := range names {
		note.Tags = append(note.Tags, models.Tag{Name: name})
	}
	return note
}

func identity(s string) string { return s }

func TestParseNoteFilter_Defaults(t *testing.T) {
	filter, err := ParseNoteFilter(nil)
	require.NoError(t, err)

	assert.Nil(t, filter.Active)
	assert.Nil(t, filter.Tags)
	assert.False(t, filter.NoTags)
	assert.False(t, filter.LastMod)
	assert.True(t, filter.Asc)
}

func TestParseNoteFilter_AllFields(t *testing.T) {
	filter, err := ParseNoteFilter(map[string]interface{}{
		"active":   false,
		"tags":     []interface{}{"a", "b"},
		"no_tags":  true,
		"last_mod": true,
		"asc":      false,
	})
	require.NoError(t, err)

	require.NotNil(t, filter.Active)
	assert.False(t, *filter.Active)
	assert.Equal(t, []string{"a", "b"}, filter.Tags)
	assert.True(t, filter.NoTags)
	assert.True(t, filter.LastMod)
	assert.False(t, filter.Asc)
}

func TestParseNoteFilter_EmptyTagsIsPresent(t *testing.T) {
	filter, err := ParseNoteFilter(map[string]interface{}{"tags": []interface{}{}})
	require.NoError(t, err)

	assert.NotNil(t, filter.Tags)
	assert.Empty(t, filter.Tags)
}

func TestParseNoteFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		data  map[string]interface{}
		field string
	}{
		{"unknown field", map[string]interface{}{"color": "red"}, "color"},
		{"active not bool", map[string]interface{}{"active": "yes"}, "active"},
		{"active null", map[string]interface{}{"active": nil}, "active"},
		{"tags not list", map[string]interface{}{"tags": "a"}, "tags"},
		{"tags with number", map[string]interface{}{"tags": []interface{}{"a", 1.0}}, "tags"},
		{"asc not bool", map[string]interface{}{"asc": 1.0}, "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNoteFilter(tt.data)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBuildNotePredicate(t *testing.T) {
	yes, no := true, false
	both := noteWithTags(true, "A", "B")
	onlyB := noteWithTags(false, "B")
	untagged := noteWithTags(true)

	tests := []struct {
		name   string
		filter NoteFilter
		want   []bool // both, onlyB, untagged
	}{
		{"no criteria", NoteFilter{}, []bool{true, true, true}},
		{"active", NoteFilter{Active: &yes}, []bool{true, false, true}},
		{"inactive", NoteFilter{Active: &no}, []bool{false, true, false}},
		{"any of", NoteFilter{Tags: []string{"B", "C"}}, []bool{true, true, false}},
		{"no match", NoteFilter{Tags: []string{"C"}}, []bool{false, false, false}},
		{"empty tags", NoteFilter{Tags: []string{}}, []bool{false, false, false}},
		{"empty tags with no_tags", NoteFilter{Tags: []string{}, NoTags: true}, []bool{false, false, true}},
		{"tags with no_tags", NoteFilter{Tags: []string{"A"}, NoTags: true}, []bool{true, false, true}},
		{"no_tags without tags", NoteFilter{NoTags: true}, []bool{true, true, true}},
		{"active and tags", NoteFilter{Active: &yes, Tags: []string{"B"}}, []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := BuildNotePredicate(tt.filter, identity)
			assert.Equal(t, tt.want[0], pred(&both))
			assert.Equal(t, tt.want[1], pred(&onlyB))
			assert.Equal(t, tt.want[2], pred(&untagged))
		})
	}
}

func TestBuildNotePredicate_UsesKey(t *testing.T) {
	note := noteWithTags(true, "Work")

	sensitive := BuildNotePredicate(NoteFilter{Tags: []string{"work"}}, NewTagResolver(true).Key)
	insensitive := BuildNotePredicate(NoteFilter{Tags: []string{"work"}}, NewTagResolver(false).Key)

	assert.False(t, sensitive(&note))
	assert.True(t, insensitive(&note))
}

func TestActiveFilterPartitionsNotes(t *testing.T) {
	notes := []models.Note{
		noteWithTags(true, "A"),
		noteWithTags(false),
		noteWithTags(true),
		noteWithTags(false, "B"),
	}
	yes, no := true, false

	active := FilterNotes(notes, BuildNotePredicate(NoteFilter{Active: &yes}, identity))
	inactive := FilterNotes(notes, BuildNotePredicate(NoteFilter{Active: &no}, identity))
	all := FilterNotes(notes, BuildNotePredicate(NoteFilter{}, identity))

	assert.Len(t, active, 2)
	assert.Len(t, inactive, 2)
	assert.Equal(t, len(all), len(active)+len(inactive))
	for _, n := range active {
		assert.True(t, n.Active)
	}
	for _, n := range inactive {
		assert.False(t, n.Active)
	}
}
