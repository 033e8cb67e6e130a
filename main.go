package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bhavik1112000/ams-backend/cmd"
	"github.com/bhavik1112000/ams-backend/internal/core/container"
	"github.com/bhavik1112000/ams-backend/internal/core/logger"
	"github.com/bhavik1112000/ams-backend/internal/core/routes"
	"github.com/bhavik1112000/ams-backend/internal/database"
	"github.com/bhavik1112000/ams-backend/internal/middleware"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	dbURL := databaseURL()
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatal("Could not connect to the database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Connected to the database successfully!")

	appContainer := container.NewAppContainer(db, log)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(log))

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	addr := os.Getenv("APP_HOST")
	if addr == "" {
		addr = ":5000"
	}

	if err := router.Run(addr); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

// databaseURL prefers DATABASE_URL and falls back to assembling one from
// the discrete DB_* variables.
func databaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}

	if os.Getenv("DB_HOST") == "" {
		return ""
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"),
	)
}
