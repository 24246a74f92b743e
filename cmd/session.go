package cmd

import (
	"fmt"

	"recipe-viewer/core/config"
	"recipe-viewer/core/database"
	"recipe-viewer/core/logger"
	"recipe-viewer/core/partition"
	"recipe-viewer/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// session bundles what every command needs after startup.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadSession() (*session, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &session{cfg: cfg, logger: logg}, nil
}

// storageClient creates the object storage client.
func (s *session) storageClient() (storage.Client, error) {
	client, err := storage.NewClient(s.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// optionalStorage returns a client only when the dataset is read from a bucket.
func (s *session) optionalStorage() storage.Client {
	if s.cfg.Data.Source != partition.SourceBucket {
		return nil
	}
	client, err := s.storageClient()
	if err != nil {
		s.logger.Warn("Optional storage client failed", zap.Error(err))
		return nil
	}
	return client
}

// source returns the configured artifact source.
func (s *session) source(client storage.Client) (partition.Source, error) {
	if s.cfg.Data.Source == partition.SourceBucket && client == nil {
		c, err := s.storageClient()
		if err != nil {
			return nil, err
		}
		client = c
	}
	return partition.NewSource(s.cfg.Data, client, s.cfg.Storage.Bucket)
}

// optionalDatabase connects the catalog database, returning nil when it is unreachable.
func (s *session) optionalDatabase() *gorm.DB {
	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		s.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	s.logger.Info("Connected to catalog database", zap.String("driver", s.cfg.Database.Driver))
	return db
}

// requireDatabase connects the catalog database and fails when it is unreachable.
func (s *session) requireDatabase() (*gorm.DB, error) {
	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	return db, nil
}
