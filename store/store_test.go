package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory(map[string]any{"inflation.general": 0.03})

	assert.Equal(t, 0.03, m.Get("inflation.general", nil))
	assert.Equal(t, 42, m.Get("missing", 42))

	require.NoError(t, m.Set("inflation.general", 0.04, "admin"))
	assert.Equal(t, 0.04, m.Get("inflation.general", nil))

	src, ok := m.Source("inflation.general")
	require.True(t, ok)
	assert.Equal(t, "admin", src)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parameters.yaml")
	doc := []byte("asset_returns:\n  equity:\n    value: 0.07\ninflation:\n  general: 0.03\n")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	f, err := NewFile(FileConfig{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 0.07, f.Get("asset_returns.equity.value", nil))
	assert.Equal(t, "none", f.Get("asset_returns.crypto.value", "none"))

	require.NoError(t, f.Set("inflation.general", 0.05, "admin"))
	assert.Equal(t, 0.05, f.Get("inflation.general", nil))
}

func TestFileWriteBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parameters.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tax:\n  state_rate: 0.05\n"), 0o644))

	f, err := NewFile(FileConfig{Path: path, WriteBack: true})
	require.NoError(t, err)
	require.NoError(t, f.Set("tax.state_rate", 0.06, "admin"))

	// a fresh handle sees the persisted write
	f2, err := NewFile(FileConfig{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 0.06, f2.Get("tax.state_rate", nil))
}

func TestFileMissing(t *testing.T) {
	_, err := NewFile(FileConfig{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)

	_, err = NewFile(FileConfig{})
	assert.Error(t, err)
}
