package audio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/model"
)

// MinioConfig locates audio files in an S3 compatible bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
	// URLExpiry is the lifetime of the presigned playback URLs.
	URLExpiry time.Duration
}

type objectStore interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MinioSource lists audio objects directly under a bucket prefix and hands out
// presigned URLs for playback.
type MinioSource struct {
	client objectStore
	get    func(ctx context.Context, key string) (io.ReadCloser, error)
	bucket string
	prefix string
	expiry time.Duration
}

// NewMinioSource connects to MinIO and makes sure the bucket exists.
func NewMinioSource(ctx context.Context, cfg MinioConfig) (*MinioSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	src := newMinioSource(client, cfg)
	src.get = func(ctx context.Context, key string) (io.ReadCloser, error) {
		return client.GetObject(ctx, cfg.Bucket, key, minio.GetObjectOptions{})
	}
	return src, nil
}

func newMinioSource(client objectStore, cfg MinioConfig) *MinioSource {
	prefix := strings.TrimPrefix(cfg.Prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &MinioSource{
		client: client,
		bucket: cfg.Bucket,
		prefix: prefix,
		expiry: expiry,
	}
}

func (s *MinioSource) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

// ListAudioFiles returns the audio objects sorted by name. Nested prefixes are
// not descended into.
func (s *MinioSource) ListAudioFiles(ctx context.Context) ([]model.AudioFile, error) {
	var files []model.AudioFile

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix}) {
		if obj.Err != nil {
			return nil, apperrors.SourceUnavailable(obj.Err, s.Describe())
		}
		name := strings.TrimPrefix(obj.Key, s.prefix)
		if name == "" || strings.Contains(name, "/") || !IsAudioFile(name) {
			continue
		}

		u, err := s.client.PresignedGetObject(ctx, s.bucket, obj.Key, s.expiry, nil)
		if err != nil {
			return nil, apperrors.SourceUnavailable(err, s.Describe())
		}
		files = append(files, model.AudioFile{
			Name:    name,
			URL:     u.String(),
			Size:    obj.Size,
			ModTime: obj.LastModified,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// Open streams an object from the bucket prefix.
func (s *MinioSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, apperrors.InvalidField("name", "must be a plain file name")
	}
	if s.get == nil {
		return nil, apperrors.SourceUnavailable(fmt.Errorf("object reads not configured"), s.Describe())
	}
	obj, err := s.get(ctx, s.prefix+name)
	if err != nil {
		return nil, apperrors.SourceUnavailable(err, s.Describe())
	}
	return obj, nil
}
