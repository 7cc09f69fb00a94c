package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "peers.dat")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o600))

	assert.True(t, DirExists(dir))
	assert.False(t, FileExists(dir))
	assert.True(t, FileExists(file))
	assert.False(t, DirExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
	assert.False(t, DirExists(filepath.Join(dir, "missing")))

	size, err := FileSize(file)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
}
