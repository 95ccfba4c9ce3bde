package services

import (
	"context"

	"go.uber.org/zap"

	"audio-review/internal/api/errors"
	"audio-review/internal/api/v1/dto"
	"audio-review/internal/app/model"
	"audio-review/internal/app/repository"
)

// ViewBuilder produces the aggregated file views.
type ViewBuilder interface {
	BuildViews(ctx context.Context) ([]model.FileView, error)
}

// ReviewServiceImpl implements ReviewService
type ReviewServiceImpl struct {
	views  ViewBuilder
	store  repository.TranscriptionDAO
	logger *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(views ViewBuilder, store repository.TranscriptionDAO, logger *zap.Logger) ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewServiceImpl{
		views:  views,
		store:  store,
		logger: logger,
	}
}

func (s *ReviewServiceImpl) ListFiles(ctx context.Context) ([]model.FileView, error) {
	views, err := s.views.BuildViews(ctx)
	if err != nil {
		return nil, s.translate("list audio files", err)
	}
	return views, nil
}

func (s *ReviewServiceImpl) SaveTranscription(ctx context.Context, req *dto.SaveTranscriptionRequest) (*dto.SaveTranscriptionResponse, error) {
	inserted, err := s.store.Insert(ctx, req.ToModel())
	if err != nil {
		return nil, s.translate("save transcription", err)
	}
	if !inserted {
		s.logger.Debug("duplicate transcription ignored", zap.String("name", req.Name))
	}
	return &dto.SaveTranscriptionResponse{Status: "ok", Inserted: inserted}, nil
}

func (s *ReviewServiceImpl) RateTranscription(ctx context.Context, id int, rating int) error {
	if err := s.store.SetRating(ctx, id, rating); err != nil {
		return s.translate("rate transcription", err)
	}
	return nil
}

func (s *ReviewServiceImpl) InitializeStore(ctx context.Context) error {
	if err := s.store.Initialize(ctx); err != nil {
		return s.translate("initialize store", err)
	}
	s.logger.Info("transcription store initialized")
	return nil
}

// translate maps domain errors to API errors. Internal causes are logged
// here and never reach the response body.
func (s *ReviewServiceImpl) translate(operation string, err error) error {
	apiErr, ok := errors.FromDomain(err)
	if !ok {
		return err
	}
	if apiErr.Kind == errors.KindInternal {
		s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
	}
	return apiErr
}
