package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"

	"underwrite/adapters/memory"
	"underwrite/adapters/postgres"
	"underwrite/app"
	"underwrite/internal"
	"underwrite/internal/api"
	"underwrite/internal/config"
	"underwrite/internal/errors"
	"underwrite/internal/migration"
	"underwrite/ports"
	"underwrite/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to PostgreSQL and runs migrations
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)
	db.SetMaxIdleConns(appConfig.Database.MaxIdleConns)
	db.SetConnMaxLifetime(appConfig.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// Pick a session store: PostgreSQL when configured, in-memory otherwise
	var repo ports.SessionRepository
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		repo = postgres.NewSessionRepository(db)
		logger.Info("using PostgreSQL session store")
	} else {
		repo = memory.NewSessionRepository()
		logger.Info("DATABASE_URL not set, using in-memory session store")
	}

	sessions := app.NewSessionService(repo, logger)

	// Real-time session events over SSE
	hub := api.NewSSEHub()
	sessions.SetEventPublisher(api.NewSSEEventBroadcaster(hub))

	// Audit console on its own port
	if appConfig.Audit.Enabled {
		console, err := ui.NewApp(sessions, ui.Config{
			Port:      appConfig.Audit.Port,
			ExportDir: appConfig.Export.Dir,
		}, logger)
		if err != nil {
			log.Fatalf("Failed to initialize audit console: %v", err)
		}
		go func() {
			if err := console.Start(":" + appConfig.Audit.Port); err != nil {
				log.Fatalf("Audit console failed: %v", err)
			}
		}()
	}

	// pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Error("pprof server failed: %v", err)
			}
		}()
	}

	gin.SetMode(appConfig.Server.GinMode)
	handler := api.NewSessionHandler(sessions, logger)
	router := api.NewRouter(handler, hub, logger)

	logger.Info("underwriting API listening on :%s", appConfig.Server.Port)
	log.Fatal(router.Run(":" + appConfig.Server.Port))
}
