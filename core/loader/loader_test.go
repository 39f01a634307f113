package loader_test

import (
	"errors"
	"testing"

	"tomato-manager/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("SkipsDisabled", func(t *testing.T) {
		mgr := loader.NewManager()
		enabled := &stubFeature{name: "a", enabled: true}
		disabled := &stubFeature{name: "b", enabled: false}
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		mgr := loader.NewManager()
		failing := &stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}
		mgr.Register(failing)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.False(t, after.loaded)
	})
}
