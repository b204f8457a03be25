package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AstroAir/student-attendance-system/config"
	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/utils"
)

// Connect opens the relational backend selected by cfg.DBDriver, migrates
// the schema and seeds the default admin account. With an empty driver it
// returns (nil, nil): the process then runs on the in-memory store alone,
// and authentication is unavailable by design.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "":
		return nil, nil
	case "postgres":
		dial = postgres.Open(cfg.DSN())
	case "sqlite":
		dial = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Attendance{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	return db, nil
}

// EnsureAdmin creates the default admin account once, with a freshly
// generated random salt. An existing account is left untouched.
func EnsureAdmin(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	salt, err := utils.NewSalt()
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     username,
		Role:         "admin",
		Salt:         salt,
		PasswordHash: utils.Digest(salt, password),
	}
	return db.Create(&admin).Error
}
