package cmd

import (
	"context"
	"fmt"

	"basemedia/core/config"
	"basemedia/core/database"
	"basemedia/core/logger"
	"basemedia/core/media"
	"basemedia/core/metrics"
	"basemedia/core/storage"
	"basemedia/feature/basesets"
	"basemedia/feature/basesets/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment holds the dependencies shared by the commands.
type environment struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	db      *gorm.DB
	source  basesets.Source
	sets    *basesets.Service
	metrics *metrics.Recorder
}

// bootstrap loads the configuration and builds the base set service.
// The database is optional: without it nothing is persisted.
func bootstrap(ctx context.Context) (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Media.IsValidSource() {
		return nil, fmt.Errorf("invalid media source %q", cfg.Media.Source)
	}

	env := &environment{
		cfg:     cfg,
		logger:  logg,
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	opts := []basesets.Option{basesets.WithMetrics(env.metrics)}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		repo := store.NewRepository(conn)
		if err := repo.Migrate(ctx); err != nil {
			logg.Warn("Inventory migration failed, running without persistence", zap.Error(err))
		} else {
			env.db = conn
			opts = append(opts, basesets.WithStore(repo))
			logg.Info("Connected to inventory database", zap.String("driver", cfg.Database.Driver))
		}
	}

	switch cfg.Media.Source {
	case media.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		env.client = client
		env.source = basesets.NewBucketSource(client, cfg.Storage.Bucket, cfg.Media.Prefix, logg)
	default:
		src, err := basesets.NewDiskSource(afero.NewOsFs(), cfg.Media.Root, cfg.Media.DigestCacheSize, logg)
		if err != nil {
			return nil, fmt.Errorf("failed to create disk source: %w", err)
		}
		env.source = src
	}

	env.sets = basesets.NewService(env.source, cfg.Media, logg, opts...)
	return env, nil
}

// bucket returns the bucket checked by the integrity feature, empty for disk.
func (e *environment) bucket() string {
	if e.client == nil {
		return ""
	}
	return e.cfg.Storage.Bucket
}
