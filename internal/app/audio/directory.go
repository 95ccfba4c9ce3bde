package audio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/model"
)

// DirectorySource lists audio files at the top level of a local directory.
type DirectorySource struct {
	dir       string
	urlPrefix string
}

// NewDirectorySource serves files from dir under urlPrefix, e.g. "/audio".
func NewDirectorySource(dir, urlPrefix string) *DirectorySource {
	return &DirectorySource{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Dir returns the directory being listed.
func (s *DirectorySource) Dir() string {
	return s.dir
}

func (s *DirectorySource) Describe() string {
	return s.dir
}

// ListAudioFiles returns the audio files in the directory sorted by name.
// Names are returned exactly as stored on disk.
func (s *DirectorySource) ListAudioFiles(ctx context.Context) ([]model.AudioFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, apperrors.SourceUnavailable(err, s.dir)
	}

	files := make([]model.AudioFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		files = append(files, model.AudioFile{
			Name:    entry.Name(),
			URL:     s.urlPrefix + "/" + url.PathEscape(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// Open opens a top-level file of the directory.
func (s *DirectorySource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(name) {
		return nil, apperrors.InvalidField("name", "must be a plain file name")
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NotFound("audio file", name)
	}
	if err != nil {
		return nil, apperrors.SourceUnavailable(err, s.dir)
	}
	return f, nil
}
