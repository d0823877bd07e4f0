package config

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Lumberjack100/app-remote-config-site-backend/models"
)

// Connect opens the database described by the DSN. Postgres URLs get the
// postgres driver, anything else is treated as a SQLite path.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

// InitDB creates the tables and seeds the default user if it is missing.
func InitDB(db *gorm.DB, cfg *Config) error {
	if err := db.AutoMigrate(&models.User{}, &models.SensorConfig{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.User{}).Where("account = ?", cfg.DefaultUserAccount).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Account:     cfg.DefaultUserAccount,
		Password:    string(hashed),
		Name:        cfg.DefaultUserName,
		CompanyID:   cfg.DefaultUserCompanyID,
		CompanyName: cfg.DefaultUserCompanyName,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("Created default user: %s", cfg.DefaultUserAccount)
	return nil
}
