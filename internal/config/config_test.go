package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "data/input", cfg.InputDir)
	assert.Equal(t, "data/catalogs", cfg.OutputDir)
	assert.Equal(t, "", cfg.Manifest)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("UNISON_INPUT_DIR", "/srv/unison/in")
	t.Setenv("UNISON_OUTPUT_DIR", "/srv/unison/out")
	t.Setenv("UNISON_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "/srv/unison/in", cfg.InputDir)
	assert.Equal(t, "/srv/unison/out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}
