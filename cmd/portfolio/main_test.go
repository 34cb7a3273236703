package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "portfolio dev\n", out.String())
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  name: Studio
  url: https://studio.test
webhook:
  mode: strict
  timeout: 3s
contact:
  rate_limit: 2
  rate_window: 1m
`), 0o644))
	t.Setenv("PORTFOLIO_SITE_NAME", "FromEnv")

	v := viper.New()
	require.NoError(t, initConfig(v, path))
	cfg := siteConfig(v)

	assert.Equal(t, "FromEnv", cfg.Name, "env overrides file")
	assert.Equal(t, "https://studio.test", cfg.URL)
	assert.Equal(t, "strict", cfg.WebhookMode)
	assert.Equal(t, 3*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 2, cfg.ContactRateLimit)
	assert.Equal(t, time.Minute, cfg.ContactRateWindow)
}

func TestMissingConfigFile(t *testing.T) {
	err := initConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestServeFlagDefaults(t *testing.T) {
	v := viper.New()
	cmd := newServeCmd(v)
	require.NoError(t, cmd.Flags().Parse([]string{"--addr", ":8080", "--webhook-mode", "strict"}))
	require.NoError(t, initConfig(v, ""))

	cfg := siteConfig(v)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "strict", cfg.WebhookMode)
	assert.Zero(t, cfg.WebhookTimeout, "no relay timeout unless configured")
	assert.False(t, cfg.WatchContent)
}

func TestNewLogger(t *testing.T) {
	v := viper.New()
	v.Set("log.level", "debug")
	v.Set("log.dev", true)
	l, err := newLogger(v)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	v.Set("log.level", "loud")
	_, err = newLogger(v)
	assert.Error(t, err)
}
