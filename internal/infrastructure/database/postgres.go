package database

import (
	"fmt"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates or updates the tables the directory needs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Doctor{}); err != nil {
		return fmt.Errorf("failed to migrate doctors table: %w", err)
	}
	return nil
}
