package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "audio-review/internal/app/errors"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"take.wav", true},
		{"take.mp3", true},
		{"TAKE.WAV", true},
		{"archive.tar.mp3", true},
		{"notes.txt", false},
		{"video.mp4", false},
		{"audio.flac", false},
		{"wav", false},
		{".mp3.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAudioFile(tt.name))
		})
	}
}

func TestDirectorySource_ListAudioFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"b.wav",
		"a.mp3",
		"Kreyòl pale #1.wav",
		"readme.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("RIFF"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.wav"), 0o755))

	source := NewDirectorySource(dir, "/audio/")
	files, err := source.ListAudioFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "Kreyòl pale #1.wav", files[0].Name)
	assert.Equal(t, "/audio/"+url.PathEscape("Kreyòl pale #1.wav"), files[0].URL)
	assert.Equal(t, "a.mp3", files[1].Name)
	assert.Equal(t, "/audio/a.mp3", files[1].URL)
	assert.Equal(t, "b.wav", files[2].Name)
	assert.Equal(t, int64(4), files[2].Size)
	assert.Equal(t, dir, source.Describe())
}

func TestDirectorySource_MissingDirectory(t *testing.T) {
	source := NewDirectorySource(filepath.Join(t.TempDir(), "missing"), "/audio")

	_, err := source.ListAudioFiles(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)
}

func TestDirectorySource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectorySource(t.TempDir(), "/audio").ListAudioFiles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeObjectStore struct {
	objects    []minio.ObjectInfo
	presignErr error
	lastOpts   minio.ListObjectsOptions
}

func (f *fakeObjectStore) ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	f.lastOpts = opts
	ch := make(chan minio.ObjectInfo, len(f.objects))
	for _, o := range f.objects {
		ch <- o
	}
	close(ch)
	return ch
}

func (f *fakeObjectStore) PresignedGetObject(ctx context.Context, bucket, object string, expires time.Duration, params url.Values) (*url.URL, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return url.Parse(fmt.Sprintf("https://minio.local/%s/%s?X-Amz-Expires=%d", bucket, url.PathEscape(object), int(expires.Seconds())))
}

func TestMinioSource_ListAudioFiles(t *testing.T) {
	store := &fakeObjectStore{
		objects: []minio.ObjectInfo{
			{Key: "clips/z.wav", Size: 10},
			{Key: "clips/a.mp3", Size: 20},
			{Key: "clips/cover.png", Size: 30},
			{Key: "clips/sub/", Size: 0},
		},
	}
	source := newMinioSource(store, MinioConfig{Bucket: "review", Prefix: "/clips", URLExpiry: 15 * time.Minute})

	files, err := source.ListAudioFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "clips/", store.lastOpts.Prefix)
	assert.Equal(t, "a.mp3", files[0].Name)
	assert.Equal(t, "https://minio.local/review/clips%2Fa.mp3?X-Amz-Expires=900", files[0].URL)
	assert.Equal(t, "z.wav", files[1].Name)
	assert.Equal(t, "s3://review/clips/", source.Describe())
}

func TestMinioSource_ListError(t *testing.T) {
	store := &fakeObjectStore{
		objects: []minio.ObjectInfo{{Err: errors.New("access denied")}},
	}
	source := newMinioSource(store, MinioConfig{Bucket: "review"})

	_, err := source.ListAudioFiles(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)
	assert.Contains(t, err.Error(), "access denied")
}

func TestMinioSource_PresignError(t *testing.T) {
	store := &fakeObjectStore{
		objects:    []minio.ObjectInfo{{Key: "a.wav"}},
		presignErr: errors.New("clock skew"),
	}
	source := newMinioSource(store, MinioConfig{Bucket: "review"})

	_, err := source.ListAudioFiles(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)
}

func TestDirectorySource_Open(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "take 1.wav"), []byte("RIFF"), 0o644))
	source := NewDirectorySource(dir, "/audio")
	ctx := context.Background()

	rc, err := source.Open(ctx, "take 1.wav")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "RIFF", string(data))

	_, err = source.Open(ctx, "missing.wav")
	assert.True(t, apperrors.IsNotFound(err))

	for _, bad := range []string{"", "..", "../etc/passwd", `sub\x.wav`} {
		_, err = source.Open(ctx, bad)
		assert.True(t, apperrors.IsValidationError(err), bad)
	}
}

func TestMinioSource_Open(t *testing.T) {
	source := newMinioSource(&fakeObjectStore{}, MinioConfig{Bucket: "review", Prefix: "clips"})

	_, err := source.Open(context.Background(), "a.wav")
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)

	var requested string
	source.get = func(ctx context.Context, key string) (io.ReadCloser, error) {
		requested = key
		return io.NopCloser(strings.NewReader("ID3")), nil
	}
	rc, err := source.Open(context.Background(), "a.mp3")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "clips/a.mp3", requested)

	source.get = func(ctx context.Context, key string) (io.ReadCloser, error) {
		return nil, errors.New("no such key")
	}
	_, err = source.Open(context.Background(), "a.mp3")
	assert.ErrorIs(t, err, apperrors.ErrAudioSourceUnavailable)
}
