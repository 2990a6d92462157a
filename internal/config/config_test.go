package config

import (
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)

	assert.Equal(t, defaultServerAddress, cfg.ServerAddress)
	assert.Empty(t, cfg.SourcesFilePath)
	assert.Equal(t, defaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, defaultFetchRetryMax, cfg.FetchRetryMax)
	assert.Equal(t, int64(defaultFetchMaxBytes), cfg.FetchMaxBytes)
	assert.Equal(t, "unique", cfg.DedupPolicy)
	assert.False(t, cfg.RequireTargetHost)
	assert.False(t, cfg.AllowDirectURLs)
}

func TestNewConfig_AllowDirectURLs(t *testing.T) {
	cfg := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-allow-direct-urls"})
	assert.True(t, cfg.AllowDirectURLs)

	t.Setenv(envAllowDirectURLs, "false")
	cfg = newConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-allow-direct-urls"})
	assert.False(t, cfg.AllowDirectURLs)
}

func TestNewConfig_FlagsThenEnv(t *testing.T) {
	t.Setenv(envFetchTimeout, "3s")
	t.Setenv(envRequireTargetHost, "true")
	t.Setenv(envDedupPolicy, "preserve")

	cfg := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-server-address", ":9090",
		"-fetch-timeout", "1s",
		"-sources-file-path", "sources.jsonl",
	})

	assert.Equal(t, "localhost:9090", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.RequireTargetHost)
	assert.Equal(t, "preserve", cfg.DedupPolicy)
	require.True(t, filepath.IsAbs(cfg.SourcesFilePath))
	assert.Equal(t, "sources.jsonl", filepath.Base(cfg.SourcesFilePath))
}

func TestNewConfig_InvalidEnvIgnored(t *testing.T) {
	t.Setenv(envFetchRetryMax, "many")
	t.Setenv(envFetchTimeout, "soon")

	cfg := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)

	assert.Equal(t, defaultFetchRetryMax, cfg.FetchRetryMax)
	assert.Equal(t, defaultFetchTimeout, cfg.FetchTimeout)
}
