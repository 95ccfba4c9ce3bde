package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-review/internal/api/v1/dto"
	"audio-review/internal/app/model"
)

// MockServices contains all mock services for testing
type MockServices struct {
	ReviewService *MockReviewService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		ReviewService: NewMockReviewService(t),
	}
}

// MockReviewService is a mock implementation of services.ReviewService
type MockReviewService struct {
	mock.Mock
}

func NewMockReviewService(t *testing.T) *MockReviewService {
	m := &MockReviewService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockReviewService) ListFiles(ctx context.Context) ([]model.FileView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileView), args.Error(1)
}

func (m *MockReviewService) SaveTranscription(ctx context.Context, req *dto.SaveTranscriptionRequest) (*dto.SaveTranscriptionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveTranscriptionResponse), args.Error(1)
}

func (m *MockReviewService) RateTranscription(ctx context.Context, id int, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockReviewService) InitializeStore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
