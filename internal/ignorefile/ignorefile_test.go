package ignorefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	patterns, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, patterns)
}

func TestLoadParsesInOrder(t *testing.T) {
	dir := t.TempDir()
	content := "# build artifacts\n*.log\n\nbuild/\n   \n!build/keep.txt\n  # trailing comment\nnode_modules/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name), []byte(content), 0o644))

	patterns, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "build/", "!build/keep.txt", "node_modules/"}, patterns)
}

func TestLoadStripsCarriageReturns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name), []byte("*.tmp\r\ncache/\r\n"), 0o644))

	patterns, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "cache/"}, patterns)
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name), nil, 0o644))

	patterns, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, patterns)
}
