//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"audio-review/internal/api/server"
	"audio-review/internal/app/importer"
	"audio-review/internal/app/metrics"
	"audio-review/internal/app/repository"
	"audio-review/internal/app/transcribe"
	"audio-review/internal/config"
)

var storeSet = wire.NewSet(provideStore)

var viewSet = wire.NewSet(provideAudioSource, provideAggregator)

// InitializeStore opens the configured transcription store.
func InitializeStore(cfg *config.Config, m *metrics.Metrics) (repository.MaintenanceDAO, func(), error) {
	wire.Build(storeSet)
	return nil, nil, nil
}

// InitializeServer wires the HTTP server with its store and audio source.
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*server.Server, func(), error) {
	wire.Build(
		storeSet,
		viewSet,
		provideReviewService,
		provideServiceContainer,
		provideServerConfig,
		server.NewServer,
	)
	return nil, nil, nil
}

// InitializeImporter wires a batch importer writing to the configured store.
func InitializeImporter(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics, progress *importer.Progress) (*importer.Importer, func(), error) {
	wire.Build(storeSet, provideImporter)
	return nil, nil, nil
}

// InitializeBackfiller wires the transcriber for files without history.
func InitializeBackfiller(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*transcribe.Backfiller, func(), error) {
	wire.Build(storeSet, viewSet, provideTranscriber, provideBackfiller)
	return nil, nil, nil
}
