package checks

import (
	"context"
	"fmt"

	"basemedia/core/baseset"
	"basemedia/core/storage"
)

// ManifestLister lists the manifests of a kind.
type ManifestLister interface {
	Manifests(ctx context.Context, kind baseset.Kind) ([]string, error)
}

// CheckBucket returns an error unless bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}

// CheckManifests returns the names of the kinds without a single manifest.
func CheckManifests(ctx context.Context, src ManifestLister, kinds []baseset.Kind) ([]string, error) {
	missing := []string{}
	for _, kind := range kinds {
		paths, err := src.Manifests(ctx, kind)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			missing = append(missing, kind.Name)
		}
	}
	return missing, nil
}
