package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"musicbase/internal/config"
	"musicbase/internal/music"
	"musicbase/internal/user"
)

// Connect opens the postgres pool and runs migrations. The returned handle
// is passed to the handler factories at startup.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// No unique index on users.email: creation pre-checks by lookup instead,
	// so concurrent registrations can still race in a duplicate.
	if err := database.AutoMigrate(&user.User{}, &music.Music{}); err != nil {
		return nil, err
	}

	log.Printf("Database connected and migrated")
	return database, nil
}
