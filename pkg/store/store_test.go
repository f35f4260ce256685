package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Persistence {
	t.Helper()
	out := map[string]Persistence{"memory": NewMemory()}
	for _, backend := range []string{BackendDiskv, BackendSQLite} {
		p, err := Load(&Config{Path: t.TempDir(), Backend: backend})
		require.NoError(t, err, backend)
		t.Cleanup(func() { _ = p.Close() })
		out[backend] = p
	}
	return out
}

func TestBackendsReadWriteErase(t *testing.T) {
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.Read(KeyLists)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, p.Write(KeyLists, []byte(`[{"id":"a"}]`)))
			val, err := p.Read(KeyLists)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"a"}]`, string(val))

			require.NoError(t, p.Write(KeyLists, []byte(`[]`)))
			val, err = p.Read(KeyLists)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(val))

			require.NoError(t, p.Write(KeyTasks, []byte(`[]`)))
			assert.Equal(t, []string{KeyLists, KeyTasks}, p.Keys(context.Background()))

			require.NoError(t, p.Erase(KeyLists))
			require.NoError(t, p.Erase(KeyLists), "erasing a missing key is not an error")
			_, err = p.Read(KeyLists)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDiskvStoresOneFilePerKey(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base, Backend: BackendDiskv})
	require.NoError(t, err)
	require.NoError(t, p.Write(KeyDeletedTasks, []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(base, KeyDeletedTasks))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
	assert.Equal(t, base, p.Location())
}

func TestDiskvWritesThroughTempDir(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base, Backend: BackendDiskv})
	require.NoError(t, err)

	require.NoError(t, p.Write(KeyLists, []byte(`[{"id":"a"}]`)))
	require.NoError(t, p.Write(KeyLists, []byte(`[{"id":"b"}]`)))
	data, err := os.ReadFile(filepath.Join(base, KeyLists))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"b"}]`, string(data))

	// A leftover from an interrupted write is not a key.
	require.NoError(t, os.MkdirAll(filepath.Join(base, tempDirName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, tempDirName, "123456"), []byte("partial"), 0o644))
	assert.Equal(t, []string{KeyLists}, p.Keys(context.Background()))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base, Backend: BackendSQLite})
	require.NoError(t, err)
	require.NoError(t, p.Write(KeyTasks, []byte(`[1]`)))
	require.NoError(t, p.Close())

	p, err = Load(&Config{Path: base, Backend: BackendSQLite})
	require.NoError(t, err)
	defer p.Close()
	val, err := p.Read(KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(val))
	assert.Equal(t, filepath.Join(base, SQLiteFileName), p.Location())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	_, err := Load(&Config{Path: t.TempDir(), Backend: "paper"})
	assert.Error(t, err)
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(cfgFile, []byte("path = \"/tmp/somewhere\"\nbackend = \"sqlite\"\n"), 0o644))

	t.Setenv("TASKLISTS_CONFIG_PATH", dir)
	t.Setenv("TASKLISTS_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/somewhere", cfg.Path)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "list", cfg.View)
}

func TestWriteConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, WriteConfig(path, DefaultConfig()))
	assert.Error(t, WriteConfig(path, DefaultConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend")
	assert.Contains(t, string(data), BackendDiskv)
}

func TestBasePathExpandsHome(t *testing.T) {
	cfg := &Config{Path: "~/.tasklists"}
	assert.NotContains(t, cfg.BasePath(), "~")
	assert.Equal(t, "", (*Config)(nil).BasePath())
}
