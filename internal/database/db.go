package database

import (
	"log"

	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and runs migrations.
// TranslateError is on so unique-index violations come back as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Resume{},
		&models.Application{},
		&models.UserAnalytics{},
	)
}
