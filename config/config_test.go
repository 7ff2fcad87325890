/*
File    : loxgo/config/config_test.go
Package : config
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loxgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"lox> \"\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.False(t, cfg.Color)
	// unspecified fields keep their defaults
	assert.Equal(t, Default().HistoryFile, cfg.HistoryFile)
	assert.Equal(t, Default().DefaultStage, cfg.DefaultStage)
}
