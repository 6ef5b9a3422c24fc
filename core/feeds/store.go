package feeds

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"schedule-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Store reads and writes feed files by name.
type Store interface {
	// Check verifies the store is reachable.
	Check(ctx context.Context) error
	// Open returns the content of a feed.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Save writes a feed, replacing any previous content under that name.
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	// List returns the feed names the store holds.
	List(ctx context.Context) ([]string, error)
}

// NewStore builds the store selected by cfg.Backend.
func NewStore(cfg Config, client storage.Client, bucket string) (Store, error) {
	switch cfg.Backend {
	case "", BackendFile:
		return NewFileStore(cfg.Dir), nil
	case BackendBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket backend requires a storage client")
		}
		return NewBucketStore(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported feeds backend: %s", cfg.Backend)
	}
}

// FileStore keeps feeds in a local directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+name)))
}

func (s *FileStore) Check(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("feeds directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("feeds directory %s is not a directory", s.dir)
	}
	return nil
}

func (s *FileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open feed %s: %w", name, err)
	}
	return f, nil
}

func (s *FileStore) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to create feed %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write feed %s: %w", name, err)
	}
	return f.Close()
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// BucketStore keeps feeds as objects under a prefix in a storage bucket.
type BucketStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketStore creates a store over bucket/prefix.
func NewBucketStore(client storage.Client, bucket, prefix string) *BucketStore {
	return &BucketStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *BucketStore) key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

func (s *BucketStore) Check(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

func (s *BucketStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get feed %s: %w", name, err)
	}
	return obj, nil
}

func (s *BucketStore) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	opts := minio.PutObjectOptions{ContentType: contentType(name)}
	if _, err := s.client.PutObject(ctx, s.bucket, s.key(name), r, size, opts); err != nil {
		return fmt.Errorf("failed to upload feed %s: %w", name, err)
	}
	return nil
}

func (s *BucketStore) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list feeds: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		names = append(names, strings.TrimPrefix(obj.Key, s.prefix))
	}
	sort.Strings(names)
	return names, nil
}

func contentType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, ".xlsx"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case strings.Contains(lower, ".csv"):
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
