package storage

import (
	"fmt"
	"log/slog"

	slogGorm "github.com/orandin/slog-gorm"

	"github.com/studyhall-app/backend/pkg/config"
	"github.com/studyhall-app/backend/pkg/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the backing store and migrates the schema. TranslateError
// is on so unique constraint violations surface as [gorm.ErrDuplicatedKey],
// which the repositories rely on to report duplicate memberships.
func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.StudyGroup{},
		&model.Membership{},
		&model.Message{},
		&model.Note{},
		&model.StudySession{},
		&model.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	return db, nil
}
