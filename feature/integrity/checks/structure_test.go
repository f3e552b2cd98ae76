package checks

import (
	"context"
	"errors"
	"testing"

	"basemedia/core/baseset"
	"basemedia/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listerFunc func(ctx context.Context, kind baseset.Kind) ([]string, error)

func (f listerFunc) Manifests(ctx context.Context, kind baseset.Kind) ([]string, error) {
	return f(ctx, kind)
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "basesets").Return(true, nil)
		assert.NoError(t, CheckBucket(ctx, client, "basesets"))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "basesets").Return(false, nil)
		assert.EqualError(t, CheckBucket(ctx, client, "basesets"), "bucket basesets does not exist")
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "basesets").Return(false, errors.New("timeout"))
		assert.ErrorContains(t, CheckBucket(ctx, client, "basesets"), "failed to check bucket existence")
	})
}

func TestCheckManifests(t *testing.T) {
	ctx := context.Background()
	kinds := []baseset.Kind{{Name: "graphics"}, {Name: "sound"}, {Name: "music"}}

	t.Run("ReportsEmptyKinds", func(t *testing.T) {
		lister := listerFunc(func(_ context.Context, kind baseset.Kind) ([]string, error) {
			if kind.Name == "graphics" {
				return []string{"opengfx/opengfx.obg"}, nil
			}
			return nil, nil
		})

		missing, err := CheckManifests(ctx, lister, kinds)
		require.NoError(t, err)
		assert.Equal(t, []string{"sound", "music"}, missing)
	})

	t.Run("Error", func(t *testing.T) {
		lister := listerFunc(func(context.Context, baseset.Kind) ([]string, error) {
			return nil, errors.New("access denied")
		})

		_, err := CheckManifests(ctx, lister, kinds)
		assert.ErrorContains(t, err, "access denied")
	})
}
