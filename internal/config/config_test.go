package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "currency: USD\noutput_dir: /srv/exports\nfile_prefix: mine\nworkbook: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Currency:   "USD",
		OutputDir:  "/srv/exports",
		FilePrefix: "mine",
		Workbook:   true,
	}, got)
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("home_currency: CHF\ncurrency: usd\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Currency = "usd"
	assert.Equal(t, want, cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, filepath.Join("~", "Downloads"), cfg.OutputDir)
	assert.Equal(t, "bank-csv-transactions", cfg.FilePrefix)
	assert.False(t, cfg.Workbook)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: brl\nworkbook: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "brl", cfg.Currency)
	assert.True(t, cfg.Workbook)
	assert.Equal(t, "bank-csv-transactions", cfg.FilePrefix)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/Downloads")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandHome("/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", got)

	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}
