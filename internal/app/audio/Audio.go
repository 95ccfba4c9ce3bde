package audio

import (
	"context"
	"io"
	"path"
	"strings"

	"audio-review/internal/app/model"
)

// Extensions lists the audio formats offered for review.
var Extensions = []string{".wav", ".mp3"}

// Source lists the audio files available for review.
type Source interface {
	ListAudioFiles(ctx context.Context) ([]model.AudioFile, error)
	// Describe names the location for logs and error messages.
	Describe() string
}

// Opener reads the content of a listed file by name.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ReadableSource is a Source whose files can also be read back, as needed by
// the auto-transcriber.
type ReadableSource interface {
	Source
	Opener
}

// validName rejects anything that is not a plain file name.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// IsAudioFile reports whether name has one of the recognized extensions.
// The comparison ignores case so that "TAKE.WAV" is listed too.
func IsAudioFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
