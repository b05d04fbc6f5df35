package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 16, cfg.TileSize)
	assert.Equal(t, 4, cfg.Accelerator.LeafSize)
	assert.Equal(t, 12, cfg.Accelerator.SAHBuckets)
	assert.Equal(t, 3, cfg.Integrator.RRThreshold)
	assert.Equal(t, 5, cfg.Integrator.MaxDepth)
}

func TestLoadOverridesOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.toml")
	const body = `
samples_per_pixel = 256

[integrator]
name = "directlighting"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.SamplesPerPixel)
	assert.Equal(t, "directlighting", cfg.Integrator.Name)
	assert.Equal(t, 16, cfg.TileSize, "tile size should keep its default")
	assert.Equal(t, 5, cfg.Integrator.MaxDepth, "integrator max depth should keep its default")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
