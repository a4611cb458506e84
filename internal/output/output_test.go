package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_SingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	w := New(path)

	require.NoError(t, w.Set("was-modified", "true"))
	require.NoError(t, w.Set("formatted-message", "fix: correct login validation error"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "was-modified=true\nformatted-message=fix: correct login validation error\n", string(content))
}

func TestSet_Multiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	w := New(path)

	require.NoError(t, w.Set("original-message", "update stuff\n\nlonger explanation"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original-message<<EOF\nupdate stuff\n\nlonger explanation\nEOF\n", string(content))
}

func TestSet_MultilineValueContainingDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	w := New(path)

	require.NoError(t, w.Set("original-message", "first\nEOF\nlast"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original-message<<EOF_\nfirst\nEOF\nlast\nEOF_\n", string(content))
}

func TestSet_DisabledSink(t *testing.T) {
	assert.NoError(t, New("").Set("was-modified", "false"))

	var nilWriter *Writer
	assert.NoError(t, nilWriter.Set("was-modified", "false"))
}

func TestSet_AppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("earlier-step=done\n"), 0o600))

	require.NoError(t, New(path).Set("was-modified", "false"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier-step=done\nwas-modified=false\n", string(content))
}
