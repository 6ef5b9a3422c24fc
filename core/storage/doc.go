// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so schedule feeds (the source CSV export and the distribution
// workbooks) can be read from and written back to an S3-compatible bucket.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to mock storage
// interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves a feed as a stream.
//   - PutObject: Uploads an updated workbook.
//   - ListObjects: Lists feeds under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
