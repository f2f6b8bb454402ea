package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"underwrite/internal/migration"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url>")
	}
	databaseURL := os.Args[1]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Schema migrated to version %s", migrator.Version())
}
