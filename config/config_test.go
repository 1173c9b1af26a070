package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptctl/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, string(model.Default), cfg.Model)
	assert.Equal(t, model.DefaultTemperature, cfg.Temperature)
	assert.Equal(t, model.DefaultMaxTokens, cfg.MaxTokens)
}

func TestInit_CreatesAndRefusesOverwrite(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	path, err := Init()
	require.NoError(t, err)
	require.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, err = Init()
	assert.ErrorIs(t, err, ErrExists)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("temperature: 0.5\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Temperature)
	assert.Equal(t, string(model.Default), cfg.Model, "absent keys keep defaults")
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("model: [unclosed\n"), 0o600))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSet_RoundTrip(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	require.NoError(t, Set("model", "claude-haiku-4-5-20251001"))
	require.NoError(t, Set("temperature", "0.2"))
	require.NoError(t, Set("max_tokens", "2048"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 2048, cfg.MaxTokens)
}

func TestSet_CoercionErrors(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	assert.ErrorIs(t, Set("temperature", "warm"), ErrInvalid)
	assert.ErrorIs(t, Set("max_tokens", "lots"), ErrInvalid)
	assert.ErrorIs(t, Set("colour", "blue"), ErrInvalid)
}

func TestAPIKey_EnvWinsOverConfig(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())
	require.NoError(t, Set("api_key", "from-config"))

	t.Setenv(EnvAPIKey, "from-env")
	assert.Equal(t, "from-env", APIKey())

	t.Setenv(EnvAPIKey, "")
	assert.Equal(t, "from-config", APIKey())
}
