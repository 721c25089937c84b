package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateSealingKey_CreatesAndReuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.json")

	key1, err := LoadOrCreateSealingKey(path)
	require.NoError(t, err)
	require.Len(t, key1, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key2, err := LoadOrCreateSealingKey(path)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func TestLoadOrCreateSealingKey_DistinctPerInstallation(t *testing.T) {
	dir := t.TempDir()

	key1, err := LoadOrCreateSealingKey(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	key2, err := LoadOrCreateSealingKey(filepath.Join(dir, "b.json"))
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
}

func TestLoadOrCreateSealingKey_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadOrCreateSealingKey(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse installation secret")
}
