package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"summarizer-backend/pkg/config"
)

// NewConnection opens the application database. Postgres is used when
// DATABASE_URL is set; otherwise an embedded SQLite file keeps local runs
// self-contained.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	log.Printf("[DB] DATABASE_URL not set, using SQLite at %s", cfg.SQLitePath)
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
