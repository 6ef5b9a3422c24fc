package feeds

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schedule-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore(Config{Backend: BackendFile, Dir: t.TempDir()}, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = NewStore(Config{Backend: BackendBucket, Prefix: "schedule/"}, new(mocks.Client), "schedules")
	require.NoError(t, err)
	assert.IsType(t, &BucketStore{}, s)

	_, err = NewStore(Config{Backend: BackendBucket}, nil, "schedules")
	assert.Error(t, err)

	_, err = NewStore(Config{Backend: "ftp"}, nil, "")
	assert.Error(t, err)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Check(ctx))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	require.NoError(t, store.Save(ctx, "source.csv", strings.NewReader("a,b"), 3))

	r, err := store.Open(ctx, "source.csv")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "a,b", string(data))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"source.csv"}, names)

	_, err = store.Open(ctx, "missing.xlsx")
	assert.Error(t, err)

	assert.Equal(t, filepath.Join(dir, "etc", "passwd"), store.path("../../etc/passwd"))
	assert.Error(t, NewFileStore(filepath.Join(dir, "nope")).Check(ctx))
}

func TestBucketStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Check", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "schedules").Return(true, nil).Once()
		client.On("BucketExists", mock.Anything, "schedules").Return(false, nil).Once()
		store := NewBucketStore(client, "schedules", "schedule/")

		assert.NoError(t, store.Check(ctx))
		assert.Error(t, store.Check(ctx))
	})

	t.Run("Open", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "schedules", "schedule/source.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("a,b")), nil)
		client.On("GetObject", mock.Anything, "schedules", "schedule/gone.csv", mock.Anything).
			Return(nil, errors.New("no such key"))
		store := NewBucketStore(client, "schedules", "schedule/")

		r, err := store.Open(ctx, "source.csv")
		require.NoError(t, err)
		data, _ := io.ReadAll(r)
		assert.Equal(t, "a,b", string(data))

		_, err = store.Open(ctx, "gone.csv")
		assert.Error(t, err)
	})

	t.Run("Save", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "schedules", "schedule/dist.xlsx.new", mock.Anything, int64(4),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return opts.ContentType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
			})).Return(minio.UploadInfo{}, nil)
		store := NewBucketStore(client, "schedules", "schedule/")

		require.NoError(t, store.Save(ctx, "dist.xlsx.new", strings.NewReader("data"), 4))
		client.AssertExpectations(t)
	})

	t.Run("List", func(t *testing.T) {
		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "schedule/source.csv"}
		ch <- minio.ObjectInfo{Key: "schedule/archive/"}
		ch <- minio.ObjectInfo{Key: "schedule/dist.xlsx"}
		close(ch)

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "schedules", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
		store := NewBucketStore(client, "schedules", "schedule/")

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"dist.xlsx", "source.csv"}, names)
	})

	t.Run("List error", func(t *testing.T) {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("access denied")}
		close(ch)

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "schedules", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := NewBucketStore(client, "schedules", "schedule/").List(ctx)
		assert.Error(t, err)
	})
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", contentType("source.csv"))
	assert.Equal(t, "application/octet-stream", contentType("notes.txt"))
}
