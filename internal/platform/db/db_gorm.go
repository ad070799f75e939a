// Package db opens the PostgreSQL connection used by the repositories.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL, retrying until the database accepts
// connections or the deadline passes. It is used at startup only, so a
// failure is fatal.
func Open(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return db
}

// Migrate runs schema automigration for the given models and seeds the
// default roles. Signup depends on ROLE_USER being present.
func Migrate(db *gorm.DB, models []any, seedRoles func(*gorm.DB) error) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	if seedRoles != nil {
		if err := seedRoles(db); err != nil {
			return fmt.Errorf("failed to seed roles: %w", err)
		}
	}
	return nil
}
