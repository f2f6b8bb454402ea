package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"underwrite/adapters/memory"
	"underwrite/adapters/postgres"
	"underwrite/app"
	"underwrite/internal"
	"underwrite/internal/api"
	"underwrite/internal/config"
	"underwrite/internal/migration"
	"underwrite/ports"
)

// The API-only entrypoint: the session service and its HTTP surface
// without the audit console.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	var repo ports.SessionRepository
	if appConfig.Database.URL != "" {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.NewRunner().Run(context.Background(), db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		repo = postgres.NewSessionRepository(db)
	} else {
		repo = memory.NewSessionRepository()
		logger.Info("DATABASE_URL not set, using in-memory session store")
	}

	sessions := app.NewSessionService(repo, logger)
	hub := api.NewSSEHub()
	sessions.SetEventPublisher(api.NewSSEEventBroadcaster(hub))

	gin.SetMode(appConfig.Server.GinMode)
	router := api.NewRouter(api.NewSessionHandler(sessions, logger), hub, logger)

	logger.Info("underwriting API listening on :%s", appConfig.Server.Port)
	log.Fatal(router.Run(":" + appConfig.Server.Port))
}
