package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50052", cfg.GRPCAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "vi", cfg.DefaultLang)
	assert.Equal(t, "light", cfg.DefaultTheme)
	assert.Empty(t, cfg.AccountNum)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ACCOUNT_NUM", "0011001234567")
	t.Setenv("DEFAULT_THEME", "dark")
	t.Setenv("RECEIVE_LOG_FILE", "/tmp/receive.log")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "0011001234567", cfg.AccountNum)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.Equal(t, "/tmp/receive.log", cfg.LogFile)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("user_name: Nguyễn Văn An\ndefault_lang: en\n"), 0o600))

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "Nguyễn Văn An", cfg.UserName)
	assert.Equal(t, "en", cfg.DefaultLang)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("user_name: [unclosed\n"), 0o600))

	_, err := load(viper.New())
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
