package services

import (
	"context"

	"audio-review/internal/api/v1/dto"
	"audio-review/internal/app/model"
)

// ReviewService backs the review screen: listing files with their history,
// saving new transcriptions and rating them.
type ReviewService interface {
	ListFiles(ctx context.Context) ([]model.FileView, error)
	SaveTranscription(ctx context.Context, req *dto.SaveTranscriptionRequest) (*dto.SaveTranscriptionResponse, error)
	RateTranscription(ctx context.Context, id int, rating int) error
	InitializeStore(ctx context.Context) error
}
