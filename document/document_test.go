package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeDoc(t, "notes.md", "one two three\nfour five")

	content, words, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "one two three\nfour five", content)
	assert.Equal(t, 5, words)
}

func TestRead_SupportedExtensions(t *testing.T) {
	for _, name := range []string{"a.txt", "a.md", "a.py", "a.json", "a.yaml", "a.yml", "a.csv", "a.MD"} {
		path := writeDoc(t, name, "hello")
		_, _, err := Read(path)
		assert.NoError(t, err, name)
	}
}

func TestRead_Unsupported(t *testing.T) {
	path := writeDoc(t, "binary.exe", "hello")

	_, _, err := Read(path)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), ".exe")
}

func TestRead_Missing(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrInput)
}

func TestRead_Directory(t *testing.T) {
	_, _, err := Read(t.TempDir())
	assert.ErrorIs(t, err, ErrInput)
}

func TestRead_Binary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))

	_, _, err := Read(path)
	assert.ErrorIs(t, err, ErrInput)
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeDoc(t, "empty.txt", "")

	content, words, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.Zero(t, words)
}
