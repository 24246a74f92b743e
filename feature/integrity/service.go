package integrity

import (
	"context"
	"errors"

	"recipe-viewer/core/partition"
	"recipe-viewer/core/storage"
	"recipe-viewer/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by catalog checks when no database is configured.
	ErrNoDatabase = errors.New("catalog database is not configured")
	// ErrNoStorage is returned by bucket checks when no storage client is configured.
	ErrNoStorage = errors.New("object storage is not configured")
)

// Service handles integrity checks of a built dataset and its surroundings.
type Service struct {
	source partition.Source
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db are optional.
func NewService(source partition.Source, client storage.Client, bucket, prefix string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		client: client,
		bucket: bucket,
		prefix: prefix,
		db:     db,
		logger: logger,
	}
}

// CheckArtifacts returns the required artifacts missing from the dataset.
func (s *Service) CheckArtifacts(ctx context.Context) ([]string, error) {
	return checks.CheckArtifacts(ctx, s.source)
}

// ReconcileMaps compares the manifest, stored partitions and index references.
func (s *Service) ReconcileMaps(ctx context.Context) (*checks.MapReport, error) {
	return checks.ReconcileMaps(ctx, s.source)
}

// ScanDangling reports index references with no recipe behind them.
func (s *Service) ScanDangling(ctx context.Context) (*checks.DanglingReport, error) {
	return checks.ScanDangling(ctx, s.source)
}

// CheckCatalog verifies the catalog tables against their models.
func (s *Service) CheckCatalog() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckCatalogSchema(s.db)
}

// CheckBucket reports whether the publish bucket exists and is populated.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckBucket(ctx, s.client, s.bucket, s.prefix)
}

// FixBucket creates the publish bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixBucket(ctx, s.client, s.bucket, s.logger)
}

// RunAll runs every configured check. A failing check is reported in place and does
// not stop the others.
func (s *Service) RunAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if missing, err := s.CheckArtifacts(ctx); err != nil {
		report["artifacts"] = errorEntry(err)
	} else {
		report["artifacts"] = map[string]any{"status": "ok", "missing": nonNil(missing)}
	}

	if maps, err := s.ReconcileMaps(ctx); err != nil {
		report["maps"] = errorEntry(err)
	} else {
		report["maps"] = maps
	}

	if dangling, err := s.ScanDangling(ctx); err != nil {
		report["dangling"] = errorEntry(err)
	} else {
		report["dangling"] = dangling
	}

	if s.db != nil {
		if schema, err := s.CheckCatalog(); err != nil {
			report["catalog"] = errorEntry(err)
		} else {
			report["catalog"] = schema
		}
	}

	if s.client != nil {
		if bucket, err := s.CheckBucket(ctx); err != nil {
			report["bucket"] = errorEntry(err)
		} else {
			report["bucket"] = bucket
		}
	}

	return report
}

func errorEntry(err error) map[string]any {
	return map[string]any{"status": "error", "error": err.Error()}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
