// Command seed populates the development database with fake data.
package main

import (
	"flag"
	"log"

	"reelgraph/internal/config"
	"reelgraph/internal/database"
	"reelgraph/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to seed")
	numFilms := flag.Int("films", 50, "number of films to seed")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumFilms:    *numFilms,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
