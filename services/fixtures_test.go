package services

import (
	"sync"
	"testing"
	"time"

	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// steppingClock returns a clock that advances one second per reading, so
// every write in a test gets a distinct timestamp.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func seedUser(t *testing.T, db *database.Database, email string) models.User {
	t.Helper()
	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func seedNotebook(t *testing.T, db *database.Database, userID uuid.UUID, name string) models.Notebook {
	t.Helper()
	now := time.Now().UTC()
	notebook := models.Notebook{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.DB.Create(&notebook).Error)
	return notebook
}

func countRows(t *testing.T, db *database.Database, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Table(table).Count(&count).Error)
	return count
}

func summaryIDs(summaries []models.NoteSummary) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	return ids
}
