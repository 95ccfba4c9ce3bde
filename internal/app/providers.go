package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"audio-review/internal/api/server"
	"audio-review/internal/api/v1/routes"
	"audio-review/internal/api/v1/services"
	"audio-review/internal/app/audio"
	"audio-review/internal/app/history"
	"audio-review/internal/app/importer"
	"audio-review/internal/app/metrics"
	"audio-review/internal/app/repository"
	"audio-review/internal/app/repository/pg"
	"audio-review/internal/app/repository/sqlite"
	"audio-review/internal/app/transcribe"
	"audio-review/internal/config"
)

// AudioURLPrefix is where the server exposes a local audio directory.
const AudioURLPrefix = "/audio"

// provideStore opens the store selected by DATABASE_DRIVER. The returned
// cleanup closes the connection pool.
func provideStore(cfg *config.Config, m *metrics.Metrics) (repository.MaintenanceDAO, func(), error) {
	db := cfg.Database
	opts := []repository.Option{
		repository.WithQueryTimeout(db.QueryTimeout),
		repository.WithMetrics(m),
	}

	var store repository.MaintenanceDAO
	switch db.Driver {
	case repository.DriverPostgres:
		dsn, err := pg.BuildDSN(db.URL, pg.DSNOptions{RequireSSL: db.RequireSSL, ConnectTimeout: db.ConnectTimeout})
		if err != nil {
			return nil, nil, err
		}
		pgStore, err := pg.NewPostgresDB(dsn, pg.PoolConfig{
			MaxOpenConns:    db.MaxOpenConns,
			MaxIdleConns:    db.MaxIdleConns,
			ConnMaxLifetime: db.ConnMaxLifetime,
		}, opts...)
		if err != nil {
			return nil, nil, err
		}
		store = pgStore
	case repository.DriverSQLite:
		sqliteStore, err := sqlite.NewSQLiteDB(db.SQLitePath, opts...)
		if err != nil {
			return nil, nil, err
		}
		store = sqliteStore
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", db.Driver)
	}

	cleanup := func() {
		store.Close()
	}
	return store, cleanup, nil
}

// provideAudioSource builds the source selected by AUDIO_SOURCE.
func provideAudioSource(ctx context.Context, cfg *config.Config) (audio.ReadableSource, error) {
	switch cfg.Audio.Source {
	case config.AudioSourceMinio:
		mc := cfg.Audio.Minio
		return audio.NewMinioSource(ctx, audio.MinioConfig{
			Endpoint:  mc.Endpoint,
			AccessKey: mc.AccessKey,
			SecretKey: mc.SecretKey,
			Bucket:    mc.Bucket,
			Prefix:    mc.Prefix,
			UseSSL:    mc.UseSSL,
			URLExpiry: mc.URLExpiry,
		})
	default:
		return audio.NewDirectorySource(cfg.Audio.Dir, AudioURLPrefix), nil
	}
}

func provideAggregator(source audio.ReadableSource, store repository.MaintenanceDAO) *history.Aggregator {
	return history.NewAggregator(source, store)
}

func provideReviewService(views *history.Aggregator, store repository.MaintenanceDAO, logger *zap.Logger) services.ReviewService {
	return services.NewReviewService(views, store, logger)
}

func provideServiceContainer(review services.ReviewService) *routes.ServiceContainer {
	return &routes.ServiceContainer{ReviewService: review}
}

func provideServerConfig(cfg *config.Config) server.Config {
	sc := server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Environment,
		StaticDir:    cfg.Server.StaticDir,
	}
	// Presigned URLs point at the bucket, so only a local directory is served.
	if cfg.Audio.Source == config.AudioSourceDir {
		sc.AudioDir = cfg.Audio.Dir
	}
	return sc
}

// provideTranscriber requires OPENAI_API_KEY. The key format is only checked
// against the default OpenAI endpoint.
func provideTranscriber(cfg *config.Config) (transcribe.Transcriber, error) {
	if cfg.OpenAI.BaseURL == "" {
		if err := config.ValidateAPIKey(cfg.OpenAI.APIKey); err != nil {
			return nil, err
		}
	}
	client, err := transcribe.NewClient(transcribe.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return transcribe.NewRemoteTranscriber(client, cfg.OpenAI.Language), nil
}

func provideBackfiller(views *history.Aggregator, source audio.ReadableSource, store repository.MaintenanceDAO, transcriber transcribe.Transcriber, logger *zap.Logger) *transcribe.Backfiller {
	return transcribe.NewBackfiller(views, source, store, transcriber, logger)
}

func provideImporter(store repository.MaintenanceDAO, logger *zap.Logger, m *metrics.Metrics, progress *importer.Progress) *importer.Importer {
	return importer.New(store, logger, importer.WithMetrics(m), importer.WithProgress(progress))
}
