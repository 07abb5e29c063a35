package database

import (
	"notelist-app/notelist/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the tables, including the note_tags join
// table and the (notebook_id, name_key) unique index on tags.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Notebook{},
		&models.Tag{},
		&models.Note{},
		&models.Event{},
	)

	if err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		return err
	}

	return nil
}
