package services

import (
	"strings"
	"testing"

	"notelist-app/notelist/models"
	"notelist-app/notelist/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagResolver_CreatesAndReuses(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "resolver@example.com")
	notebook := seedNotebook(t, db, user.ID, "Resolver")
	resolver := NewTagResolver(true)

	var first, second []models.Tag
	require.NoError(t, db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		first, err = resolver.Resolve(tx, notebook.ID, []string{" Work ", "Home"}, user.ID.String())
		return err
	}))
	require.Len(t, first, 2)
	assert.Equal(t, "Work", first[0].Name)
	assert.Equal(t, "Home", first[1].Name)
	assert.Nil(t, first[0].Color)

	require.NoError(t, db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		second, err = resolver.Resolve(tx, notebook.ID, []string{"Home", "Work"}, user.ID.String())
		return err
	}))
	require.Len(t, second, 2)
	assert.Equal(t, first[1].ID, second[0].ID)
	assert.Equal(t, first[0].ID, second[1].ID)

	assert.Equal(t, int64(2), countRows(t, db, "tags"))
}

func TestTagResolver_DuplicateInputResolvesToSameTag(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "dup@example.com")
	notebook := seedNotebook(t, db, user.ID, "Dup")

	tags, err := NewTagResolver(true).Resolve(db.DB, notebook.ID, []string{"X", "X"}, user.ID.String())
	require.NoError(t, err)

	require.Len(t, tags, 2)
	assert.Equal(t, tags[0].ID, tags[1].ID)
	assert.Len(t, uniqueTags(tags), 1)
	assert.Equal(t, int64(1), countRows(t, db, "tags"))
}

func TestTagResolver_RejectsEmptyNames(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "empty@example.com")
	notebook := seedNotebook(t, db, user.ID, "Empty")

	_, err := NewTagResolver(true).Resolve(db.DB, notebook.ID, []string{"ok", "   "}, user.ID.String())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int64(0), countRows(t, db, "tags"))
}

func TestTagResolver_RejectsOverlongNames(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "long@example.com")
	notebook := seedNotebook(t, db, user.ID, "Long")
	resolver := NewTagResolver(true)

	_, err := resolver.Resolve(db.DB, notebook.ID, []string{"ok", strings.Repeat("a", 201)}, user.ID.String())
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "max")
	assert.Equal(t, int64(0), countRows(t, db, "tags"))

	tags, err := resolver.Resolve(db.DB, notebook.ID, []string{strings.Repeat("a", 200)}, user.ID.String())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagResolver_FoldedKeyMayOutgrowName(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "fold@example.com")
	notebook := seedNotebook(t, db, user.ID, "Fold")
	name := strings.Repeat("ß", 200)

	tags, err := NewTagResolver(false).Resolve(db.DB, notebook.ID, []string{name}, user.ID.String())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, name, tags[0].Name)
	assert.Equal(t, strings.Repeat("ss", 200), tags[0].NameKey)
}

func TestTagResolver_ScopedToNotebook(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "scope@example.com")
	one := seedNotebook(t, db, user.ID, "One")
	two := seedNotebook(t, db, user.ID, "Two")
	resolver := NewTagResolver(true)

	a, err := resolver.Resolve(db.DB, one.ID, []string{"Shared"}, user.ID.String())
	require.NoError(t, err)
	b, err := resolver.Resolve(db.DB, two.ID, []string{"Shared"}, user.ID.String())
	require.NoError(t, err)

	assert.NotEqual(t, a[0].ID, b[0].ID)
	assert.Equal(t, one.ID, a[0].NotebookID)
	assert.Equal(t, two.ID, b[0].NotebookID)
}

func TestTagResolver_CaseHandling(t *testing.T) {
	t.Run("case sensitive keeps distinct tags", func(t *testing.T) {
		db := testutils.SetupSQLiteDB(t)
		user := seedUser(t, db, "cs@example.com")
		notebook := seedNotebook(t, db, user.ID, "CS")

		tags, err := NewTagResolver(true).Resolve(db.DB, notebook.ID, []string{"Work", "work"}, user.ID.String())
		require.NoError(t, err)
		assert.NotEqual(t, tags[0].ID, tags[1].ID)
		assert.Equal(t, int64(2), countRows(t, db, "tags"))
	})

	t.Run("case insensitive folds names", func(t *testing.T) {
		db := testutils.SetupSQLiteDB(t)
		user := seedUser(t, db, "ci@example.com")
		notebook := seedNotebook(t, db, user.ID, "CI")

		tags, err := NewTagResolver(false).Resolve(db.DB, notebook.ID, []string{"Work", "WORK", "work"}, user.ID.String())
		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, tags[0].ID, tags[1].ID)
		assert.Equal(t, tags[0].ID, tags[2].ID)
		assert.Equal(t, "Work", tags[0].Name)
		assert.Equal(t, int64(1), countRows(t, db, "tags"))
	})
}

func TestTagResolver_ConflictReusesExistingTag(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "race@example.com")
	notebook := seedNotebook(t, db, user.ID, "Race")
	resolver := NewTagResolver(true)

	winner, err := resolver.create(db.DB, notebook.ID, "Racy", resolver.Key("Racy"), user.ID.String())
	require.NoError(t, err)

	_, err = resolver.create(db.DB, notebook.ID, "Racy", resolver.Key("Racy"), user.ID.String())
	require.ErrorIs(t, err, ErrTagConflict)

	tag, err := resolver.findOrCreate(db.DB, notebook.ID, "Racy", resolver.Key("Racy"), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, winner.ID, tag.ID)
	assert.Equal(t, int64(1), countRows(t, db, "tags"))
}

func TestTagResolver_RecordsCreationEvents(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	user := seedUser(t, db, "events@example.com")
	notebook := seedNotebook(t, db, user.ID, "Events")

	_, err := NewTagResolver(true).Resolve(db.DB, notebook.ID, []string{"a", "b", "a"}, user.ID.String())
	require.NoError(t, err)

	var events []models.Event
	require.NoError(t, db.DB.Where("event = ?", "tag.created").Find(&events).Error)
	assert.Len(t, events, 2)
}
