package filecheck

import (
	"context"
	"errors"

	"basemedia/core/baseset"
	"basemedia/core/checksum"
	"basemedia/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageChecker checks objects below a prefix of a bucket.
type StorageChecker struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewStorageChecker creates a checker resolving paths below prefix in bucket.
func NewStorageChecker(client storage.Client, bucket, prefix string, logger *zap.Logger) *StorageChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StorageChecker{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Check implements baseset.Checker.
func (c *StorageChecker) Check(ctx context.Context, name string, want checksum.Digest) baseset.Status {
	rel, err := Scoped(name)
	if err != nil {
		c.logger.Warn("Refusing to check object", zap.Error(err))
		return baseset.Missing
	}
	key := c.prefix + rel

	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return baseset.Missing
	}
	defer obj.Close()

	digest, err := checksum.Sum(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return baseset.Missing
		}
		c.logger.Warn("Failed to hash object", zap.String("object", key), zap.Error(err))
		return baseset.Mismatched
	}
	return compare(digest, want)
}
