package cmd

import (
	"context"
	"fmt"

	"schedule-sync/core/config"
	"schedule-sync/core/database"
	"schedule-sync/core/feeds"
	"schedule-sync/core/logger"
	"schedule-sync/core/metrics"
	"schedule-sync/core/storage"
	"schedule-sync/feature/schedule"
	"schedule-sync/feature/schedule/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command builds from configuration.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	db      *gorm.DB
	service *schedule.Service
}

// historyMode says whether a command needs the run history database.
type historyMode int

const (
	historyOff historyMode = iota
	historyOptional
	historyRequired
)

func newRuntime(ctx context.Context, mode historyMode) (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var client storage.Client
	if cfg.Feeds.Backend == feeds.BackendBucket {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, err
		}
	}
	store, err := feeds.NewStore(cfg.Feeds, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	if err := store.Check(ctx); err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logg, metrics: metrics.NewRecorder()}

	var repo *history.Repository
	if mode != historyOff {
		db, err := database.Connect(cfg.Database)
		switch {
		case err != nil && mode == historyRequired:
			return nil, fmt.Errorf("history database required: %w", err)
		case err != nil:
			logg.Warn("Optional history database connection failed", zap.Error(err))
		default:
			if err := history.Migrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate history tables: %w", err)
			}
			rt.db = db
			repo = history.NewRepository(db)
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	rt.service = schedule.NewService(store, cfg.Feeds, logg, rt.metrics, repo)
	return rt, nil
}

func (rt *runtime) close() {
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.logger.Sync()
}
