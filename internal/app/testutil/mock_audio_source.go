package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-review/internal/app/model"
)

// MockAudioSource is a testify mock of audio.ReadableSource.
type MockAudioSource struct {
	mock.Mock
}

func NewMockAudioSource(t *testing.T) *MockAudioSource {
	m := &MockAudioSource{}
	m.Test(t)
	return m
}

func (m *MockAudioSource) ListAudioFiles(ctx context.Context) ([]model.AudioFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AudioFile), args.Error(1)
}

func (m *MockAudioSource) Describe() string {
	return "mock"
}

func (m *MockAudioSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
