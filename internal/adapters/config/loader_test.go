package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/config"
	"go.trai.ch/strata/internal/core/domain"
)

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
root: viewer-root
identityFields: [uuid, id]
store: state/cache.json
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "strata.yaml"), []byte(content), 0o600))

	cfg, err := (&config.FileConfigLoader{}).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.NodeID("viewer-root"), cfg.RootID)
	assert.Equal(t, []string{"uuid", "id"}, cfg.IdentityFields)
	assert.Equal(t, filepath.Join(tmpDir, "state/cache.json"), cfg.StorePath)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := (&config.FileConfigLoader{}).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.NodeID(config.DefaultRootID), cfg.RootID)
	assert.Equal(t, []string{"id"}, cfg.IdentityFields)
	assert.Equal(t, filepath.Join(tmpDir, config.DefaultStorePath), cfg.StorePath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "strata.yaml"), []byte(`version: "1"`), 0o600))

	cfg, err := (&config.FileConfigLoader{}).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.NodeID(config.DefaultRootID), cfg.RootID)
	assert.Equal(t, []string{"id"}, cfg.IdentityFields)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "strata.yaml"), []byte("root: [broken"), 0o600))

	_, err := (&config.FileConfigLoader{}).Load(tmpDir)
	assert.Error(t, err)
}

func TestLoad_CustomFilename(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "custom.yaml"), []byte("root: other"), 0o600))

	cfg, err := (&config.FileConfigLoader{Filename: "custom.yaml"}).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID("other"), cfg.RootID)
}
