package filecheck

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"basemedia/core/baseset"
	"basemedia/core/checksum"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultCacheSize is the digest cache size used when none is configured.
const DefaultCacheSize = 512

type cachedDigest struct {
	size    int64
	modTime time.Time
	digest  checksum.Digest
}

// ErrOutsideScope is returned for a path that leaves the search scope.
var ErrOutsideScope = errors.New("path is outside the search scope")

// Scoped cleans a path relative to the search scope. Leading slashes are
// dropped; a path that climbs above the scope with ".." is rejected.
func Scoped(name string) (string, error) {
	clean := path.Clean(strings.TrimLeft(name, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideScope, name)
	}
	return clean, nil
}

// Scope restricts fs to the directory root.
func Scope(fs afero.Fs, root string) afero.Fs {
	return afero.NewBasePathFs(fs, root)
}

// DiskChecker checks files of a search scope, usually built with Scope.
type DiskChecker struct {
	fs     afero.Fs
	cache  *lru.Cache[string, cachedDigest]
	logger *zap.Logger
}

// NewDiskChecker creates a checker resolving paths within scope.
func NewDiskChecker(scope afero.Fs, cacheSize int, logger *zap.Logger) (*DiskChecker, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, cachedDigest](cacheSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiskChecker{fs: scope, cache: cache, logger: logger}, nil
}

// Check implements baseset.Checker.
func (c *DiskChecker) Check(_ context.Context, name string, want checksum.Digest) baseset.Status {
	rel, err := Scoped(name)
	if err != nil {
		c.logger.Warn("Refusing to check file", zap.Error(err))
		return baseset.Missing
	}

	info, err := c.fs.Stat(rel)
	if err != nil || info.IsDir() {
		return baseset.Missing
	}

	if cached, ok := c.cache.Get(rel); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return compare(cached.digest, want)
	}

	f, err := c.fs.Open(rel)
	if err != nil {
		return baseset.Missing
	}
	defer f.Close()

	digest, err := checksum.Sum(f)
	if err != nil {
		c.logger.Warn("Failed to hash file", zap.String("file", rel), zap.Error(err))
		return baseset.Mismatched
	}

	c.cache.Add(rel, cachedDigest{size: info.Size(), modTime: info.ModTime(), digest: digest})
	return compare(digest, want)
}

func compare(got, want checksum.Digest) baseset.Status {
	if got == want {
		return baseset.Matched
	}
	return baseset.Mismatched
}
