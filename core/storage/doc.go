// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so base sets can be served from an S3 compatible
// bucket instead of a local directory. Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// # Client Interface
//
// The Client interface only exposes what the base set scanner and the storage
// file checker need, which keeps it easy to mock (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves manifests and set files as a stream.
//   - ListObjects: Lists manifests below a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "basesets")
package storage
