// Test Type: Unit Test
// Description: Tests for the test helpers

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/data.csv", "a;b\n")

	assert.Equal(t, filepath.Join(dir, "nested", "data.csv"), path)
	assert.True(t, FileExists(t, path))
	assert.Equal(t, "a;b\n", ReadFile(t, path))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, FileExists(t, filepath.Join(dir, "missing")))
	assert.False(t, FileExists(t, dir), "directories are not files")
}

func TestCSV(t *testing.T) {
	got := CSV(";", []string{"article_number", "color_code"},
		[]string{"001", "1"},
		[]string{"002", "2"},
	)
	assert.Equal(t, "article_number;color_code\n001;1\n002;2\n", got)

	assert.Equal(t, "a,b\n", CSV(",", []string{"a", "b"}))
}

func TestIsolate(t *testing.T) {
	dir := Isolate(t)

	wd, err := os.Getwd()
	assert.NoError(t, err)

	// Resolve symlinked temp roots before comparing
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(wd)
	assert.Equal(t, want, got)
	assert.Equal(t, "false", os.Getenv("PRICAT_LOG_FILE"))
	assert.NotEmpty(t, os.Getenv("XDG_CONFIG_HOME"))
}
