package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/license"
	"github.com/randalmurphal/promptctl/model"
)

func TestCompare_RequiresPro(t *testing.T) {
	t.Setenv(license.EnvVar, "")
	path := writeTemplate(t, "name: t\nuser: hi\n")

	mock := client.NewMock("x")
	r := NewRunner(mock, config.Defaults())

	_, err := r.Compare(context.Background(), path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, license.ErrProRequired)
	assert.Empty(t, mock.Calls, "gated operation must not reach the API")
}

func TestCompare_DefaultModels(t *testing.T) {
	t.Setenv(license.EnvVar, license.GenerateKey(""))
	path := writeTemplate(t, "name: greet\nuser: hi\n")

	mock := client.NewMock("a response")
	r := NewRunner(mock, config.Defaults())

	result, err := r.Compare(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "greet", result.PromptName)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, string(model.Sonnet), result.Entries[0].Model)
	assert.Equal(t, string(model.Haiku), result.Entries[1].Model)
}

func TestCompare_RequestedOrderPreserved(t *testing.T) {
	t.Setenv(license.EnvVar, license.GenerateKey(""))
	path := writeTemplate(t, "name: t\nuser: hi\n")

	mock := client.NewMock("x")
	r := NewRunner(mock, config.Defaults())

	result, err := r.Compare(context.Background(), path, "m-three, m-one ,m-two")
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, "m-three", result.Entries[0].Model)
	assert.Equal(t, "m-one", result.Entries[1].Model)
	assert.Equal(t, "m-two", result.Entries[2].Model)
}

func TestCompare_TooFewModels(t *testing.T) {
	t.Setenv(license.EnvVar, license.GenerateKey(""))
	path := writeTemplate(t, "name: t\nuser: hi\n")

	r := NewRunner(client.NewMock("x"), config.Defaults())
	_, err := r.Compare(context.Background(), path, "only-one")
	assert.ErrorIs(t, err, ErrTemplate)
}

func TestCompare_PreviewBounded(t *testing.T) {
	t.Setenv(license.EnvVar, license.GenerateKey(""))
	path := writeTemplate(t, "name: t\nuser: hi\n")

	long := strings.Repeat("r", 1000)
	r := NewRunner(client.NewMock(long), config.Defaults())

	result, err := r.Compare(context.Background(), path, "a,b")
	require.NoError(t, err)
	assert.Len(t, result.Entries[0].ResponsePreview, 200)
}
