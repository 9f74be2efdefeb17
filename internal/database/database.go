package database

import (
	"strings"

	"powerboard-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB. A postgres:// DSN gets the Postgres driver
// (PreferSimpleProtocol avoids 42P05 behind poolers like PgBouncer);
// anything else is treated as a SQLite file path, which keeps local dev and
// Vercel (/tmp) deployments dependency-free.
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// AutoMigrate runs migrations for all scheduler tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Schedule{}, &models.Crew{}, &models.ActivityLog{})
}

// DefaultCrews is the installation roster seeded on first boot.
var DefaultCrews = []models.Crew{
	{ID: 1, Name: "WESTY Alpha", Location: "Westminster", Roofers: 2, Electricians: 1, Color: "#3b82f6", Active: 1},
	{ID: 2, Name: "WESTY Bravo", Location: "Westminster", Roofers: 2, Electricians: 1, Color: "#10b981", Active: 1},
	{ID: 3, Name: "DTC Alpha", Location: "Centennial", Roofers: 2, Electricians: 1, Color: "#8b5cf6", Active: 1},
	{ID: 4, Name: "DTC Bravo", Location: "Centennial", Roofers: 2, Electricians: 1, Color: "#ec4899", Active: 1},
	{ID: 5, Name: "COSP Alpha", Location: "Colorado Springs", Roofers: 3, Electricians: 1, Color: "#f97316", Active: 1},
	{ID: 6, Name: "SLO Solar", Location: "San Luis Obispo", Roofers: 2, Electricians: 1, Color: "#06b6d4", Active: 1},
	{ID: 7, Name: "SLO Electrical 1", Location: "San Luis Obispo", Roofers: 0, Electricians: 2, Color: "#a855f7", Active: 1},
	{ID: 8, Name: "SLO Electrical 2", Location: "San Luis Obispo", Roofers: 0, Electricians: 2, Color: "#14b8a6", Active: 1},
	{ID: 9, Name: "CAM Crew", Location: "Camarillo", Roofers: 2, Electricians: 1, Color: "#f43f5e", Active: 1},
	{ID: 10, Name: "SBA Alpha", Location: "Santa Barbara", Roofers: 2, Electricians: 1, Color: "#eab308", Active: 1},
	{ID: 11, Name: "SBA Bravo", Location: "Santa Barbara", Roofers: 2, Electricians: 1, Color: "#84cc16", Active: 1},
}

// SeedCrews inserts the default roster if the crews table is empty.
func SeedCrews(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Crew{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rows := append([]models.Crew(nil), DefaultCrews...)
	return db.Create(&rows).Error
}
