package vb6cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Diagnostics.MaxPerFile)
	assert.False(t, cfg.Diagnostics.FailOnAny)
	assert.Equal(t, ":8080", cfg.Server.ListenAddress)
	assert.Equal(t, "vb6p.db", cfg.Server.DatabasePath)
	assert.Equal(t, "VB6P_JWT_SECRET", cfg.Server.JWTSecretEnv)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vb6p.toml")

	const contents = "[diagnostics]\n" +
		"fail_on_any = true\n" +
		"\n" +
		"[server]\n" +
		"listen_address = \":9090\"\n"

	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Diagnostics.FailOnAny)
	assert.Equal(t, ":9090", cfg.Server.ListenAddress)
	// Fields left unset in the file should still carry Default()'s values.
	assert.Equal(t, "vb6p.db", cfg.Server.DatabasePath)
	assert.Equal(t, "VB6P_JWT_SECRET", cfg.Server.JWTSecretEnv)
	assert.Equal(t, 0, cfg.Diagnostics.MaxPerFile)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedTOMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not [valid toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
