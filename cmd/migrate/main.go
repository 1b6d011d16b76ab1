// Command migrate applies the database schema.
package main

import (
	"log"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/config"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
