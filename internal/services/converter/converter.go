package converter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/linkrewriter"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=converter.go -destination=../../mocks/mock_converter.go -package=mocks
type SourceStorage interface {
	SourceGetByName(ctx context.Context, name string) (models.Source, error)
	SourceList(ctx context.Context) ([]models.Source, error)
	Ping(ctx context.Context) error
}

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Converter resolves a subscription source, fetches it and rewrites its links.
type Converter struct {
	storage         SourceStorage
	fetcher         Fetcher
	rewriter        *linkrewriter.Rewriter
	log             zerolog.Logger
	allowDirectURLs bool
}

type Option func(*Converter)

// WithDirectURLs lets callers pass an absolute http(s) URL as the source.
// Off by default: only registered sources are fetched.
func WithDirectURLs(allow bool) Option {
	return func(s *Converter) {
		s.allowDirectURLs = allow
	}
}

func NewServiceConverter(storage SourceStorage, fetcher Fetcher, rewriter *linkrewriter.Rewriter, log zerolog.Logger, opts ...Option) *Converter {
	s := &Converter{
		storage:  storage,
		fetcher:  fetcher,
		rewriter: rewriter,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert returns linkrewriter.ErrNoLinks when the subscription holds no
// convertible link.
func (s *Converter) Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResult, error) {
	if s.rewriter.Options().RequireTargetHost && linkrewriter.NormalizeHost(req.TargetHost) == "" {
		return models.ConvertResult{}, linkrewriter.ErrTargetHostRequired
	}

	text, err := s.resolveText(ctx, req)
	if err != nil {
		return models.ConvertResult{}, err
	}

	links, err := s.rewriter.Rewrite(text, linkrewriter.Params{
		TargetHost: req.TargetHost,
		ProxyIP:    req.ProxyIP,
		Port:       req.Port,
	})
	if err != nil {
		return models.ConvertResult{}, err
	}

	s.log.Debug().
		Str("source", req.Source).
		Int("links", len(links)).
		Str("dedup", s.rewriter.Options().Dedup.String()).
		Msg("subscription converted")

	return models.ConvertResult{Links: links}, nil
}

func (s *Converter) resolveText(ctx context.Context, req models.ConvertRequest) (string, error) {
	if strings.TrimSpace(req.Text) != "" {
		return req.Text, nil
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		return "", fmt.Errorf("%w: source or text is required", models.ErrInvalidData)
	}

	rawURL := source
	if isHTTPURL(source) {
		if !s.allowDirectURLs {
			return "", fmt.Errorf("%w: direct source urls are disabled", models.ErrInvalidData)
		}
	} else {
		src, err := s.storage.SourceGetByName(ctx, source)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) {
				return "", fmt.Errorf("%w: unknown source %q", models.ErrUnfound, source)
			}
			return "", fmt.Errorf("failed to get source: %w", err)
		}
		rawURL = src.URL
	}

	text, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch subscription: %w", err)
	}
	return text, nil
}

func (s *Converter) ListSources(ctx context.Context) ([]models.Source, error) {
	sources, err := s.storage.SourceList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return sources, nil
}

func (s *Converter) Ping(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
