package testutils

import (
	"testing"

	"notelist-app/notelist/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupSQLiteDB opens a migrated in-memory SQLite database that lives for the
// duration of the test. A single connection keeps every query on the same
// in-memory database.
func SetupSQLiteDB(t *testing.T) *database.Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(gormDB))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &database.Database{DB: gormDB}
}
