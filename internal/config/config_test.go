package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(12345), cfg.Noise.Seed)
	assert.Equal(t, 2.0, cfg.Noise.Amplitude)
	assert.Equal(t, 0.1, cfg.Noise.Frequency)
	assert.Equal(t, 4, cfg.Noise.Octaves)
	assert.Equal(t, 0.5, cfg.Noise.Persistence)
	assert.Equal(t, 2.0, cfg.Noise.Lacunarity)
	assert.Equal(t, -10.0, cfg.Noise.BaseHeight)
	assert.Equal(t, 16.0, cfg.Chunk.Size)
	assert.Equal(t, 32, cfg.Chunk.Resolution)
	assert.Equal(t, 8, cfg.Viewer.Radius)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terraingen.yaml")
	content := []byte(`
noise:
  seed: 777
  octaves: 6
chunk:
  resolution: 64
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, int64(777), cfg.Noise.Seed)
	assert.Equal(t, 6, cfg.Noise.Octaves)
	assert.Equal(t, 64, cfg.Chunk.Resolution)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2.0, cfg.Noise.Amplitude)
	assert.Equal(t, 16.0, cfg.Chunk.Size)
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terraingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("noise:\n  octaves: 0\n"), 0o644))

	_, err := Load(viper.New(), path)
	assert.Error(t, err)

	path2 := filepath.Join(dir, "terraingen2.yaml")
	require.NoError(t, os.WriteFile(path2, []byte("chunk:\n  resolution: 1\n"), 0o644))

	_, err = Load(viper.New(), path2)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParamConversion(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	np := cfg.NoiseParams()
	assert.NoError(t, np.Validate())
	assert.Equal(t, cfg.Noise.Seed, np.Seed)

	cp := cfg.ChunkParams()
	assert.NoError(t, cp.Validate())
	assert.Equal(t, cfg.Chunk.Resolution, cp.ChunkResolution)
}
