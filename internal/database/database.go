// Package database manages the optional generation history store.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/projectlavos/tabforge/internal/logger"
	"github.com/projectlavos/tabforge/internal/models"
)

// Connect opens the Postgres history database and migrates the schema.
// Callers should treat a nil *gorm.DB as "history disabled".
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Generation{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Generation history database connected", logger.Fields{})
	return db, nil
}

// SaveGeneration records one generated tab. Failures are logged, not
// returned: history must never break generation.
func SaveGeneration(db *gorm.DB, gen *models.Generation) {
	if db == nil {
		return
	}
	if err := db.Create(gen).Error; err != nil {
		logger.Error("Failed to save generation history", err, logger.Fields{
			"root":    gen.Root,
			"scale":   gen.Scale,
			"pattern": gen.Pattern,
		})
	}
}

// RecentGenerations returns the latest history records, newest first.
func RecentGenerations(db *gorm.DB, limit int) ([]models.Generation, error) {
	if db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var gens []models.Generation
	err := db.Order("created_at DESC").Limit(limit).Find(&gens).Error
	return gens, err
}
