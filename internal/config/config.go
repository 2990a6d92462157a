package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	envServerAddress     = "SERVER_ADDRESS"
	envSourcesFilePath   = "SOURCES_FILE_PATH"
	envFetchTimeout      = "FETCH_TIMEOUT"
	envFetchRetryMax     = "FETCH_RETRY_MAX"
	envFetchMaxBytes     = "FETCH_MAX_BYTES"
	envDedupPolicy       = "DEDUP_POLICY"
	envRequireTargetHost = "REQUIRE_TARGET_HOST"
	envAllowDirectURLs   = "ALLOW_DIRECT_URLS"
	envLogLevel          = "LOG_LEVEL"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultSourcesFilePath = ""
	defaultFetchTimeout    = 15 * time.Second
	defaultFetchRetryMax   = 3
	defaultFetchMaxBytes   = 5 << 20
	defaultDedupPolicy     = "unique"
	defaultLogLevel        = "info"
)

type Config struct {
	ServerAddress     string
	SourcesFilePath   string // JSON lines, one {"name":..,"url":..} per line
	FetchTimeout      time.Duration
	FetchRetryMax     int
	FetchMaxBytes     int64
	DedupPolicy       string // unique | preserve
	RequireTargetHost bool
	AllowDirectURLs   bool // accept raw http(s) URLs as a source
	LogLevel          string
}

func NewConfig() *Config {
	return newConfig(flag.CommandLine, os.Args[1:])
}

func newConfig(fs *flag.FlagSet, args []string) *Config {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		SourcesFilePath: defaultSourcesFilePath,
		FetchTimeout:    defaultFetchTimeout,
		FetchRetryMax:   defaultFetchRetryMax,
		FetchMaxBytes:   defaultFetchMaxBytes,
		DedupPolicy:     defaultDedupPolicy,
		LogLevel:        defaultLogLevel,
	}

	// Parse flags
	fs.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.SourcesFilePath, "sources-file-path", cfg.SourcesFilePath, "Subscription sources file path")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "Upstream fetch timeout")
	fs.IntVar(&cfg.FetchRetryMax, "fetch-retry-max", cfg.FetchRetryMax, "Upstream fetch retries")
	fs.Int64Var(&cfg.FetchMaxBytes, "fetch-max-bytes", cfg.FetchMaxBytes, "Upstream body size limit")
	fs.StringVar(&cfg.DedupPolicy, "dedup-policy", cfg.DedupPolicy, "Output dedup policy: unique or preserve")
	fs.BoolVar(&cfg.RequireTargetHost, "require-target-host", cfg.RequireTargetHost, "Reject conversions without a target host")
	fs.BoolVar(&cfg.AllowDirectURLs, "allow-direct-urls", cfg.AllowDirectURLs, "Accept direct http(s) URLs as a source")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	_ = fs.Parse(args)

	// Apply environment variables
	cfg.applyEnv(envServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(envSourcesFilePath, &cfg.SourcesFilePath)
	cfg.applyEnvDuration(envFetchTimeout, &cfg.FetchTimeout)
	cfg.applyEnvInt(envFetchRetryMax, &cfg.FetchRetryMax)
	cfg.applyEnvInt64(envFetchMaxBytes, &cfg.FetchMaxBytes)
	cfg.applyEnv(envDedupPolicy, &cfg.DedupPolicy)
	cfg.applyEnvBool(envRequireTargetHost, &cfg.RequireTargetHost)
	cfg.applyEnvBool(envAllowDirectURLs, &cfg.AllowDirectURLs)
	cfg.applyEnv(envLogLevel, &cfg.LogLevel)

	// Final setup
	cfg.SourcesFilePath = cfg.resolveFilePath()
	cfg.normalizeServerAddress()

	return cfg
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) applyEnvInt(key string, target *int) {
	if val, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(val); err == nil {
			*target = n
		}
	}
}

func (c *Config) applyEnvInt64(key string, target *int64) {
	if val, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			*target = n
		}
	}
}

func (c *Config) applyEnvBool(key string, target *bool) {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			*target = b
		}
	}
}

func (c *Config) resolveFilePath() string {
	if c.SourcesFilePath == "" || filepath.IsAbs(c.SourcesFilePath) {
		return c.SourcesFilePath
	}

	absPath, err := filepath.Abs(c.SourcesFilePath)
	if err != nil {
		return filepath.Clean(c.SourcesFilePath)
	}
	return absPath
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
