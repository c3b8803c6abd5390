package main

import (
	"log"
	"os"

	"plot-editor-be/internal/model"
	"plot-editor-be/pkg/blob"
	"plot-editor-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.Open(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions needed for gen_random_uuid defaults
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.Work{},
		&model.Episode{},
		&model.Plot{},
		&model.Character{},
		&model.Relation{},
		&model.GraphLayout{},
		&blob.DocumentBlob{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: composite indexes that speed up the list endpoints
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_episodes_work_order ON episodes (work_id, order_index);`,
		`CREATE INDEX IF NOT EXISTS idx_plots_episode_order ON plots (episode_id, order_index);`,
		`CREATE INDEX IF NOT EXISTS idx_characters_work ON characters (work_id);`,
		`CREATE INDEX IF NOT EXISTS idx_relations_work ON relations (work_id);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
