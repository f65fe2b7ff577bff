package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestDirExistsStatFailures(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.False(t, DirExists(file), "a regular file is not a directory")

	// Stat fails with ENOTDIR here, not ENOENT; it must report absent, not
	// panic
	assert.False(t, DirExists(filepath.Join(file, "child")))
}

func TestCreateDirIfNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	assert.False(t, DirExists(dir))
	require.NoError(t, CreateDirIfNotExist(dir))
	assert.True(t, DirExists(dir))

	// Idempotent
	assert.NoError(t, CreateDirIfNotExist(dir))
}
