package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "foodsnap", cfg.App.Name)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "image", cfg.Upload.FormField)
	assert.Equal(t, 80, cfg.Vision.JPEGQuality)
	assert.Equal(t, int64(178_956_970), cfg.Vision.MaxPixels)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
host = "127.0.0.1"
port = 9000

[vision]
jpeg_quality = 90

[log]
format = "console"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.HTTPAddr())
	assert.Equal(t, 90, cfg.Vision.JPEGQuality)
	assert.Equal(t, "console", cfg.Log.Format)
	// untouched sections keep their defaults
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
}

func TestLoadIgnoresMalformedIntEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("APP_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.App.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("VISION_JPEG_QUALITY", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "jpeg_quality")
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[app\nport = "), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.ErrorContains(t, err, "decode config file failed")
}

func TestLoadMaxPixels(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("VISION_MAX_PIXELS", "1000000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), cfg.Vision.MaxPixels)

	t.Setenv("VISION_MAX_PIXELS", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "max_pixels")
}
