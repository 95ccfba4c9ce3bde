package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-review/internal/app/model"
)

// MockTranscriptionDAO is a testify mock of repository.MaintenanceDAO.
type MockTranscriptionDAO struct {
	mock.Mock
}

func NewMockTranscriptionDAO(t *testing.T) *MockTranscriptionDAO {
	m := &MockTranscriptionDAO{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTranscriptionDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTranscriptionDAO) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTranscriptionDAO) Insert(ctx context.Context, rec model.NewTranscription) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranscriptionDAO) SetRating(ctx context.Context, id int, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockTranscriptionDAO) ListAll(ctx context.Context) ([]model.Transcription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcription), args.Error(1)
}

func (m *MockTranscriptionDAO) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTranscriptionDAO) DeleteNullTimestamps(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
