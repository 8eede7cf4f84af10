// Package app wires configuration into the services shared by the bot and the CLI.
package app

import (
	"database/sql"
	"fmt"

	"wordgen/internal/config"
	"wordgen/internal/repository"
	"wordgen/internal/repository/memory"
	"wordgen/internal/repository/postgres"
	"wordgen/internal/service"
	"wordgen/internal/wordapi"

	"go.uber.org/zap"
)

// Services holds everything the front ends need
type Services struct {
	Generator *service.GeneratorService
	Dashboard *service.DashboardService

	db *sql.DB
}

// Build creates the word source and the dashboard repository selected by cfg
func Build(cfg *config.Config, logger *zap.Logger) (*Services, error) {
	if cfg.WordsAPI.Key == "" {
		logger.Warn("WORDS_API_KEY is not set, the upstream may reject requests and fallback words will be used")
	}

	client := wordapi.NewClient(wordapi.Config{
		URL:     cfg.WordsAPI.URL,
		APIKey:  cfg.WordsAPI.Key,
		Timeout: cfg.WordsAPI.Timeout,
	})

	svc := &Services{
		Generator: service.NewGeneratorService(client, logger),
	}

	var repo repository.DashboardRepository
	if cfg.UsesPostgres() {
		db, err := postgres.Connect(cfg.DSN(), postgres.DefaultConnectOptions, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := postgres.Migrate(db, cfg.MigrationsURL, logger); err != nil {
			db.Close()
			return nil, err
		}

		svc.db = db
		repo = postgres.NewDashboardRepo(db)
	} else {
		repo = memory.NewDashboardRepo()
	}

	logger.Info("Dashboard data source selected", zap.String("source", cfg.DashboardSource))
	svc.Dashboard = service.NewDashboardService(repo, logger)

	return svc, nil
}

// Close releases the database connection, if any
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
