package basesets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"basemedia/core/baseset"
	"basemedia/core/filecheck"
	"basemedia/core/manifest"
	"basemedia/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Source is where manifests and their files are read from.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Loader reads a manifest given its full path.
	Loader() manifest.Loader
	// Checker verifies files given their path relative to the source root.
	Checker() baseset.Checker
	// Manifests lists the full paths of all manifests of kind.
	Manifests(ctx context.Context, kind baseset.Kind) ([]string, error)
	// Path converts a path relative to the source root into a full path.
	Path(rel string) string
	// BasePathLen is the length of the root prefix of every full path.
	BasePathLen() int
}

func hasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

// scopedPath returns full relative to prefix, rejecting paths that leave it.
func scopedPath(full, prefix string) (string, error) {
	rel, ok := strings.CutPrefix(full, prefix)
	if !ok {
		return "", fmt.Errorf("%w: %s", filecheck.ErrOutsideScope, full)
	}
	return filecheck.Scoped(rel)
}

// DiskSource reads sets from a directory tree. Manifests and set files are
// read through a filesystem scoped to the root.
type DiskSource struct {
	scope   afero.Fs
	root    string
	prefix  string
	checker *filecheck.DiskChecker
	logger  *zap.Logger
}

// NewDiskSource creates a source rooted at root on fs.
func NewDiskSource(fs afero.Fs, root string, cacheSize int, logger *zap.Logger) (*DiskSource, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	root = filepath.ToSlash(filepath.Clean(root))
	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	scope := filecheck.Scope(fs, root)
	checker, err := filecheck.NewDiskChecker(scope, cacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest cache: %w", err)
	}
	return &DiskSource{scope: scope, root: root, prefix: prefix, checker: checker, logger: logger}, nil
}

func (s *DiskSource) Name() string             { return "disk:" + s.root }
func (s *DiskSource) Checker() baseset.Checker { return s.checker }
func (s *DiskSource) Path(rel string) string   { return s.prefix + strings.TrimPrefix(rel, "/") }
func (s *DiskSource) BasePathLen() int         { return len(s.prefix) }

// Loader reads manifests given their full path below the root.
func (s *DiskSource) Loader() manifest.Loader {
	load := manifest.FileLoader(s.scope)
	return func(ctx context.Context, full string) (manifest.Manifest, error) {
		rel, err := scopedPath(full, s.prefix)
		if err != nil {
			return nil, err
		}
		return load(ctx, rel)
	}
}

// Manifests walks the root directory. A missing root yields no manifests.
func (s *DiskSource) Manifests(ctx context.Context, kind baseset.Kind) ([]string, error) {
	exists, err := afero.DirExists(s.scope, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.root, err)
	}
	if !exists {
		s.logger.Debug("Search path does not exist", zap.String("root", s.root))
		return nil, nil
	}

	var paths []string
	err = afero.Walk(s.scope, "/", func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() || !hasExtension(p, kind.Extension) {
			return nil
		}
		paths = append(paths, s.Path(filepath.ToSlash(p)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for %s sets: %w", s.root, kind.Name, err)
	}
	return paths, nil
}

// BucketSource reads sets from an object storage bucket below a key prefix.
type BucketSource struct {
	client  storage.Client
	bucket  string
	prefix  string
	checker *filecheck.StorageChecker
}

// NewBucketSource creates a source for objects below prefix in bucket.
func NewBucketSource(client storage.Client, bucket, prefix string, logger *zap.Logger) *BucketSource {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &BucketSource{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		checker: filecheck.NewStorageChecker(client, bucket, prefix, logger),
	}
}

func (s *BucketSource) Name() string             { return "storage:" + s.bucket + "/" + s.prefix }
func (s *BucketSource) Checker() baseset.Checker { return s.checker }
func (s *BucketSource) Path(rel string) string   { return s.prefix + strings.TrimPrefix(rel, "/") }
func (s *BucketSource) BasePathLen() int         { return len(s.prefix) }

// Loader fetches manifests from the bucket.
func (s *BucketSource) Loader() manifest.Loader {
	return func(ctx context.Context, key string) (manifest.Manifest, error) {
		rel, err := scopedPath(key, s.prefix)
		if err != nil {
			return nil, err
		}
		key = s.prefix + rel

		obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get manifest %s: %w", key, err)
		}
		defer obj.Close()

		data, err := io.ReadAll(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", key, err)
		}
		m, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return m, nil
	}
}

// Manifests lists the objects below the prefix with the kind's extension.
func (s *BucketSource) Manifests(ctx context.Context, kind baseset.Kind) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s sets: %w", kind.Name, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") || !hasExtension(obj.Key, kind.Extension) {
			continue
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}
