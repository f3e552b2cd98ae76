package loader_test

import (
	"errors"
	"testing"

	"basemedia/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		enabled := &stubFeature{name: "basesets", enabled: true}
		disabled := &stubFeature{name: "integrity"}

		mgr := loader.NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		failing := &stubFeature{name: "basesets", enabled: true, err: errors.New("boom")}
		next := &stubFeature{name: "integrity", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(failing)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature basesets")
		assert.False(t, next.loaded)
	})
}
