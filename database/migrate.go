package database

import (
	"log"

	"soiladvisor/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	if err := DB.AutoMigrate(&models.User{}); err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
