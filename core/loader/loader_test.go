package loader_test

import (
	"errors"
	"testing"

	"github.com/frogmanjhb/checkinapp/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  *[]string
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }

func (f *fakeFeature) Load(app fiber.Router) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	*f.loaded = append(*f.loaded, f.name)
	return nil
}

func TestManager_LoadAll_Order(t *testing.T) {
	var loaded []string
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "first", enabled: true, loaded: &loaded})
	mgr.Register(&fakeFeature{name: "second", enabled: true, loaded: &loaded})

	require.NoError(t, mgr.LoadAll(fiber.New()))
	assert.Equal(t, []string{"first", "second"}, loaded)
}

func TestManager_LoadAll_SkipsDisabled(t *testing.T) {
	var loaded []string
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "off", enabled: false, loaded: &loaded})
	mgr.Register(&fakeFeature{name: "on", enabled: true, loaded: &loaded})

	require.NoError(t, mgr.LoadAll(fiber.New()))
	assert.Equal(t, []string{"on"}, loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	var loaded []string
	boom := errors.New("boom")
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "broken", enabled: true, loadErr: boom})
	mgr.Register(&fakeFeature{name: "after", enabled: true, loaded: &loaded})

	err := mgr.LoadAll(fiber.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	// Loading stops at the first failure.
	assert.Empty(t, loaded)
}

func TestManager_LoadAll_Empty(t *testing.T) {
	assert.NoError(t, loader.NewManager().LoadAll(fiber.New()))
}
