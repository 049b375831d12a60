package filestorage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	adapter, err := New(WithDir(dir))
	require.NoError(t, err)

	const name = "GPTZero Report - 1700000000000.pdf"

	exists, err := adapter.Exists(name)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, adapter.Write(name, strings.NewReader("%PDF-1.3")))

	exists, err = adapter.Exists(name)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)

	f, err := adapter.Read(name)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "%PDF-1.3", string(data))

	// Writing again truncates.
	require.NoError(t, adapter.Write(name, strings.NewReader("x")))
	f, err = adapter.Read(name)
	require.NoError(t, err)
	data, err = io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "x", string(data))

	require.NoError(t, adapter.Delete(name))
	exists, err = adapter.Exists(name)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdapter_AbsolutePath(t *testing.T) {
	t.Parallel()

	adapter, err := New(WithDir(t.TempDir()))
	require.NoError(t, err)

	other := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, adapter.Write(other, strings.NewReader("data")))

	_, err = os.Stat(other)
	require.NoError(t, err)
}

func TestNew_InvalidDir(t *testing.T) {
	t.Parallel()

	_, err := New(WithDir(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = New(WithDir(file))
	require.Error(t, err)
}
