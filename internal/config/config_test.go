package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdwiki/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 2*time.Second, cfg.CopyResetDelay())
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.CatalogPath = "/tmp/catalog.yaml"
	cfg.UISettings.CopyResetMs = 500
	cfg.UISettings.HelpInPager = false
	cfg.Log.Level = "debug"

	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "copy_reset_ms = 500")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 500*time.Millisecond, loaded.CopyResetDelay())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_path = \"x.yaml\"\n[ui]\ncopy_reset_ms = 0\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "x.yaml", cfg.CatalogPath)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 2000, cfg.UISettings.CopyResetMs)
	assert.True(t, cfg.UISettings.ShowDescriptions)
	assert.True(t, cfg.UISettings.AltScreen)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [oops"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		loaded, ok := e.(eventbus.ConfigLoadedEvent)
		require.True(t, ok)
		assert.Equal(t, path, loaded.Path)
	case <-time.After(time.Second):
		t.Fatal("config loaded event not published")
	}
}

func TestCopyResetDelayNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, 2*time.Second, cfg.CopyResetDelay())
}
