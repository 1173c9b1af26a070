package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptctl/model"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tpl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Minimal(t *testing.T) {
	path := writeTemplate(t, "name: greeting\nuser: Hello!\n")

	tpl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "greeting", tpl.Name)
	assert.Equal(t, "Hello!", tpl.User)
	assert.Equal(t, string(model.Default), tpl.Model)
	assert.Equal(t, model.DefaultTemperature, tpl.Temperature)
	assert.Equal(t, model.DefaultMaxTokens, tpl.MaxTokens)
}

func TestLoad_ExplicitZeroTemperature(t *testing.T) {
	path := writeTemplate(t, "name: t\nuser: u\ntemperature: 0.0\n")

	tpl, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, tpl.Temperature, "explicit zero must not be replaced by the default")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing name", "user: hi\n", ErrTemplate},
		{"missing user", "name: t\n", ErrTemplate},
		{"bad yaml", "name: [unclosed\n", ErrTemplate},
		{"not a mapping", "- a\n- b\n", ErrTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemplate(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInterpolate(t *testing.T) {
	tpl := &Template{
		User:      "Translate {text} into {language}. Keep {text} intact.",
		Variables: map[string]string{"text": "hello", "language": "French"},
	}

	got := tpl.Interpolate()
	assert.Equal(t, "Translate hello into French. Keep hello intact.", got)
}

func TestInterpolate_UnknownBracesLeftAlone(t *testing.T) {
	tpl := &Template{User: "Keep {this} as-is", Variables: map[string]string{"other": "x"}}
	assert.Equal(t, "Keep {this} as-is", tpl.Interpolate())
}
