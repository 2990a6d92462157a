// Package subscription fetches raw subscription text from upstream endpoints.
package subscription

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"subrewriter/internal/domain/models"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxBytes  = 5 << 20
	defaultUserAgent = "subrewriter/1.0"

	retryWaitMin = 200 * time.Millisecond
	retryWaitMax = 2 * time.Second
)

type Config struct {
	Timeout   time.Duration
	RetryMax  int
	MaxBytes  int64
	UserAgent string
}

// Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *retryablehttp.Client
	maxBytes  int64
	userAgent string
}

func NewFetcher(cfg Config, log zerolog.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = leveledLogger{log: log.With().Str("component", "fetcher").Logger()}

	return &Fetcher{
		client:    client,
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
	}
}

// Fetch GETs rawURL and returns its body as subscription text. Base64 encoded
// bodies are decoded.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: source url must be absolute http(s)", models.ErrInvalidData)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidData, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned status %d", models.ErrUpstream, u.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", models.ErrUpstream, err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", fmt.Errorf("%w: body exceeds %d bytes", models.ErrUpstream, f.maxBytes)
	}

	return DecodeBody(body), nil
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodeBody returns body as text. A body without any "://" is treated as a
// base64 blob when it decodes to UTF-8 text that does contain links.
func DecodeBody(body []byte) string {
	text := string(body)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.Contains(trimmed, "://") {
		return text
	}

	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)

	for _, enc := range base64Encodings {
		decoded, err := enc.DecodeString(compact)
		if err == nil && utf8.Valid(decoded) && strings.Contains(string(decoded), "://") {
			return string(decoded)
		}
	}
	return text
}

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

var _ retryablehttp.LeveledLogger = leveledLogger{}
