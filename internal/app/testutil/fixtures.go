package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"audio-review/internal/app/model"
)

// SampleHistory is a.wav transcribed twice, "hello" then "hello world".
func SampleHistory() []model.NewTranscription {
	return []model.NewTranscription{
		{Filename: "a.wav", Transcription: Text("hello"), Timestamp: BaseTime},
		{Filename: "a.wav", Transcription: Text("hello world"), Author: "reviewer", Timestamp: BaseTime.Add(time.Minute)},
	}
}

// SampleViews is what the aggregator yields for SampleHistory with a.wav and
// b.wav on disk, with store ids 1 and 2.
func SampleViews() []model.FileView {
	history := []model.Transcription{
		{ID: 1, Filename: "a.wav", Transcription: "hello", Author: model.DefaultAuthor, Timestamp: BaseTime},
		{ID: 2, Filename: "a.wav", Transcription: "hello world", Author: "reviewer", Timestamp: BaseTime.Add(time.Minute)},
	}
	return []model.FileView{
		{ID: 2, Name: "a.wav", URL: "/audio/a.wav", Transcription: "hello world", Author: "reviewer", History: history},
		{ID: -2, Name: "b.wav", URL: "/audio/b.wav", History: []model.Transcription{}},
	}
}

// CreateAudioDir writes placeholder audio files into a temporary directory.
func CreateAudioDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("RIFF....WAVEfmt "), 0o644))
	}
	return dir
}
