package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"bloodgas/adapters/postgres"
	"bloodgas/adapters/rng"
	"bloodgas/app"
	"bloodgas/internal/config"
	"bloodgas/internal/errors"
	"bloodgas/ports"
	"bloodgas/ui"
)

// initDatabase connects to PostgreSQL and prepares the results table.
// An empty DATABASE_URL skips persistence entirely.
func initDatabase(appConfig *config.Config) (*sqlx.DB, ports.ResultRepository, error) {
	if appConfig.Database.URL == "" {
		return nil, nil, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "failed to ping database")
	}

	repo := postgres.NewResultRepository(db)
	if impl, ok := repo.(*postgres.ResultRepositoryImpl); ok {
		if err := impl.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "failed to prepare schema")
		}
	}
	return db, repo, nil
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

	db, results, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if db != nil {
		defer db.Close()
		log.Println("Result persistence enabled")
	} else {
		log.Println("No DATABASE_URL configured, running without persistence")
	}

	if appConfig.Export.Dir != "" {
		if err := os.MkdirAll(appConfig.Export.Dir, 0o755); err != nil {
			log.Fatalf("Failed to create export directory: %v", err)
		}
	}

	generator := app.NewGeneratorService(results)
	batches := app.NewBatchService(generator, rng.New())

	server := ui.NewApp(appConfig, generator, batches)
	log.Fatal(server.Start())
}
