package repository

import (
	"fmt"

	"github.com/kutbudev/gearstore/pkg/config"
	"github.com/kutbudev/gearstore/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database manages the relational store connection
type Database struct {
	DB *gorm.DB
}

// New creates a new database connection
func New(cfg *config.Config) (*Database, error) {
	var logLevel logger.LogLevel
	if cfg.Debug {
		logLevel = logger.Info
	} else {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return &Database{DB: db}, nil
}

// Migrate creates/updates the catalog schema. The junction model is
// registered as the join table so the product flows can address its
// rows directly.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Product{}, "Tags", &models.ProductTag{}); err != nil {
		return fmt.Errorf("failed to set up product join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Products", &models.ProductTag{}); err != nil {
		return fmt.Errorf("failed to set up tag join table: %w", err)
	}

	return db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.ProductTag{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks database connectivity
func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
