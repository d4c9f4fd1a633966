package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDataSourceName(t *testing.T) {
	dsn := sqliteDataSourceName("/var/lib/vault/cache.db")

	require.True(t, strings.HasPrefix(dsn, "file:/var/lib/vault/cache.db?"))
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=1000")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_secure_delete=true")
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	t.Run("creates missing directories with owner-only file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "vault.db")

		require.NoError(t, createLocalDBFileIfNotExists(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("keeps an existing file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vault.db")
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

		require.NoError(t, createLocalDBFileIfNotExists(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing", string(data))
	})
}
