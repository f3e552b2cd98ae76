package integrity

import (
	"context"

	"basemedia/core/storage"
	"basemedia/feature/basesets"
	"basemedia/feature/basesets/store"
	"basemedia/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	sets   *basesets.Service
	source basesets.Source
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client is nil when sets are
// served from disk and db is nil when no database is configured.
func NewService(sets *basesets.Service, source basesets.Source, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sets:   sets,
		source: source,
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// CheckSets reports the file problems of every active set.
func (s *Service) CheckSets() ([]checks.SetReport, error) {
	return checks.CheckSets(s.sets, basesets.Kinds())
}

// CheckStructure verifies the media source and returns the kinds without manifests.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client != nil {
		if err := checks.CheckBucket(ctx, s.client, s.bucket); err != nil {
			return nil, err
		}
	}
	return checks.CheckManifests(ctx, s.source, basesets.Kinds())
}

// CheckSchema compares the inventory tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, store.Models()...)
}
