package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyallius/treeclip/internal/config"
	"github.com/seyallius/treeclip/internal/walker"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func testConfig(root, output string) *config.Config {
	return &config.Config{
		InputPath:  root,
		OutputPath: output,
		RootDir:    root,
		SkipHidden: true,
		FastMode:   true,
		Quiet:      true,
	}
}

func runApp(t *testing.T, cfg *config.Config) string {
	t.Helper()
	require.NoError(t, New(cfg).Run())
	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	return string(data)
}

func TestRunBundlesTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":   "hello\n",
		"b/c.txt": "world\n",
		".hidden": "secret\n",
	})
	out := filepath.Join(t.TempDir(), "out.txt")

	got := runApp(t, testConfig(root, out))
	assert.Equal(t, "==> a.txt\nhello\n\n==> b/c.txt\nworld\n\n", got)
}

func TestRunAppliesExcludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":   "hello\n",
		"b/c.txt": "world\n",
	})
	out := filepath.Join(t.TempDir(), "out.txt")

	cfg := testConfig(root, out)
	cfg.Exclude = []string{"b/"}
	got := runApp(t, cfg)
	assert.Equal(t, "==> a.txt\nhello\n\n", got)
}

func TestRunHonorsIgnoreFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":           "hello\n",
		"debug.log":       "noise\n",
		".treeclipignore": "*.log\n",
	})
	out := filepath.Join(t.TempDir(), "out.txt")

	got := runApp(t, testConfig(root, out))
	assert.Equal(t, "==> a.txt\nhello\n\n", got)
}

func TestRunCommandLineOverridesIgnoreFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.log":        "kept\n",
		"other.log":       "noise\n",
		".treeclipignore": "*.log\n",
	})
	out := filepath.Join(t.TempDir(), "out.txt")

	cfg := testConfig(root, out)
	cfg.Exclude = []string{"!keep.log"}
	got := runApp(t, cfg)
	assert.Equal(t, "==> keep.log\nkept\n\n", got)
}

func TestRunSkipsOwnOutputFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt": "hello\n",
	})
	out := filepath.Join(root, "out.txt")

	got := runApp(t, testConfig(root, out))
	assert.Equal(t, "==> a.txt\nhello\n\n", got)
}

func TestRunRootMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	cfg := testConfig(missing, filepath.Join(t.TempDir(), "out.txt"))

	err := New(cfg).Run()
	assert.ErrorIs(t, err, walker.ErrRootNotFound)
}

func TestRunRootNotDirectory(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a"})
	cfg := testConfig(filepath.Join(root, "a.txt"), filepath.Join(t.TempDir(), "out.txt"))

	err := New(cfg).Run()
	assert.ErrorIs(t, err, walker.ErrNotDirectory)
}

func TestRunEmptyTreeFails(t *testing.T) {
	cfg := testConfig(t.TempDir(), filepath.Join(t.TempDir(), "out.txt"))

	err := New(cfg).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files found")
}

func TestRunInvalidPatternFailsBeforeOutput(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a"})
	out := filepath.Join(t.TempDir(), "out.txt")

	cfg := testConfig(root, out)
	cfg.Exclude = []string{`bad\escape`}

	err := New(cfg).Run()
	require.Error(t, err)

	// Pattern validation happens before the output file is created.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWithGitRules(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":      "hello\n",
		"debug.log":  "noise\n",
		".gitignore": "*.log\n",
	})
	out := filepath.Join(t.TempDir(), "out.txt")

	cfg := testConfig(root, out)
	cfg.UseGit = true
	got := runApp(t, cfg)
	assert.Equal(t, "==> a.txt\nhello\n\n", got)
}
