package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"vendor-discovery-service/internal/adapters/vendorstore"
	"vendor-discovery-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/vendors.json"
	}

	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := vendorstore.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := vendorstore.SeedFromJSON(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
