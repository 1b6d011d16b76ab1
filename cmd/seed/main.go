// Command seed populates the database with demo marketplace data.
package main

import (
	"flag"
	"log"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/config"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/database"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/seed"
)

func main() {
	numSellers := flag.Int("sellers", 20, "number of sellers to create")
	numProducts := flag.Int("products", 120, "number of products to create")
	clean := flag.Bool("clean", false, "wipe marketplace tables before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumSellers:  *numSellers,
		NumProducts: *numProducts,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
