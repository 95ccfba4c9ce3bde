package transcribe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/importer"
	"audio-review/internal/app/model"
)

func TestRemoteTranscriber_Transcribe(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "Bonjou, kijan ou ye?"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Bonjou, kijan ou ye?",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
		{
			name:          "unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			errorContains: "401",
		},
		{
			name:          "rate limited",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			errorContains: "429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NotEmpty(t, r.Header.Get("Authorization"))
				assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

				assert.NoError(t, r.ParseMultipartForm(32<<20))
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				assert.Equal(t, "ht", r.FormValue("language"))

				file, header, err := r.FormFile("file")
				if assert.NoError(t, err) {
					defer file.Close()
					assert.Equal(t, "take 1.wav", header.Filename)
					body, _ := io.ReadAll(file)
					assert.Equal(t, "RIFF....WAVE", string(body))
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			client, err := NewClient(OpenAIConfig{APIKey: "test-api-key", BaseURL: server.URL + "/v1"})
			require.NoError(t, err)
			rt := NewRemoteTranscriber(client, "ht")

			text, err := rt.Transcribe(context.Background(), "take 1.wav", strings.NewReader("RIFF....WAVE"))
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
			assert.Equal(t, "whisper-1", rt.Author())
		})
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(OpenAIConfig{})
	assert.Error(t, err)
}

type stubViews struct {
	views []model.FileView
	err   error
}

func (s stubViews) BuildViews(ctx context.Context) ([]model.FileView, error) {
	return s.views, s.err
}

type memFiles map[string]string

func (m memFiles) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	content, ok := m[name]
	if !ok {
		return nil, apperrors.NotFound("audio file", name)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) Transcribe(ctx context.Context, name string, audio io.Reader) (string, error) {
	args := m.Called(ctx, name, audio)
	return args.String(0), args.Error(1)
}

func (m *mockTranscriber) Author() string { return "whisper-1" }

type mockInserter struct {
	mock.Mock
}

func (m *mockInserter) Insert(ctx context.Context, rec model.NewTranscription) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

func TestBackfiller_Run(t *testing.T) {
	views := stubViews{views: []model.FileView{
		{ID: 7, Name: "done.wav", History: []model.Transcription{{ID: 7, Filename: "done.wav"}}},
		{ID: -2, Name: "new.wav", History: []model.Transcription{}},
		{ID: -3, Name: "broken.wav", History: []model.Transcription{}},
		{ID: -4, Name: "vanished.wav", History: []model.Transcription{}},
	}}
	files := memFiles{"new.wav": "RIFF", "broken.wav": "RIFF", "done.wav": "RIFF"}

	tr := new(mockTranscriber)
	tr.On("Transcribe", mock.Anything, "new.wav", mock.Anything).Return("bonjou", nil)
	tr.On("Transcribe", mock.Anything, "broken.wav", mock.Anything).Return("", errors.New("413 file too large"))

	store := new(mockInserter)
	store.On("Insert", mock.Anything, mock.MatchedBy(func(r model.NewTranscription) bool {
		return r.Filename == "new.wav" && *r.Transcription == "bonjou" && r.Author == "whisper-1"
	})).Return(true, nil).Once()

	result, err := NewBackfiller(views, files, store, tr, nil).Run(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pending)
	assert.Equal(t, 1, result.Inserted)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "broken.wav", result.Failures[0].Name)
	assert.Equal(t, "vanished.wav", result.Failures[1].Name)
	assert.True(t, apperrors.IsNotFound(result.Failures[1].Err))

	tr.AssertNotCalled(t, "Transcribe", mock.Anything, "done.wav", mock.Anything)
	tr.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestBackfiller_RunLimit(t *testing.T) {
	views := stubViews{views: []model.FileView{
		{ID: -1, Name: "a.wav", History: []model.Transcription{}},
		{ID: -2, Name: "b.wav", History: []model.Transcription{}},
	}}
	tr := new(mockTranscriber)
	tr.On("Transcribe", mock.Anything, "a.wav", mock.Anything).Return("a", nil).Once()
	store := new(mockInserter)
	store.On("Insert", mock.Anything, mock.Anything).Return(true, nil).Once()

	result, err := NewBackfiller(views, memFiles{"a.wav": "x", "b.wav": "y"}, store, tr, nil).Run(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pending)
	assert.Equal(t, 1, result.Inserted)
	tr.AssertExpectations(t)
}

func TestBackfiller_ListingErrorAborts(t *testing.T) {
	listErr := apperrors.SourceUnavailable(errors.New("bucket gone"), "s3://review/")
	tr := new(mockTranscriber)

	_, err := NewBackfiller(stubViews{err: listErr}, memFiles{}, new(mockInserter), tr, nil).Run(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)
	tr.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestBackfiller_RunWithProgress(t *testing.T) {
	views := stubViews{views: []model.FileView{
		{ID: -1, Name: "a.wav", History: []model.Transcription{}},
	}}
	tr := new(mockTranscriber)
	tr.On("Transcribe", mock.Anything, "a.wav", mock.Anything).Return("a", nil)
	store := new(mockInserter)
	store.On("Insert", mock.Anything, mock.Anything).Return(true, nil)

	var buf bytes.Buffer
	progress := importer.NewProgress(importer.ProgressConfig{Enabled: true, Writer: &buf})

	result, err := NewBackfiller(views, memFiles{"a.wav": "x"}, store, tr, nil).
		WithProgress(progress).
		Run(context.Background(), 0)
	progress.Wait()

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Contains(t, buf.String(), "Transcribing")
}
