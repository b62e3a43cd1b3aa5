package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nsecond line\n"), 0o644))

	st, err := Collect(path)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Lines)
	assert.Equal(t, 4, st.Words)
	assert.Equal(t, 24, st.Chars)
	assert.Equal(t, 24, st.Bytes)
}

func TestCollectCountsRunesNotBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo"), 0o644))

	st, err := Collect(path)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Chars)
	assert.Equal(t, 6, st.Bytes)
}

func TestCollectMissingFile(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestPrintPlain(t *testing.T) {
	st := Stats{Lines: 3, Words: 4, Chars: 24, Bytes: 24}

	var buf bytes.Buffer
	st.Print(&buf, false)

	out := buf.String()
	assert.Contains(t, out, "Lines: 3")
	assert.Contains(t, out, "Words: 4")
	assert.Contains(t, out, "Chars: 24")
	assert.Contains(t, out, "24 bytes")
}
