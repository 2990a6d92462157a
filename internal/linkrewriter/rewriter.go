// Package linkrewriter converts vless subscription text into rewritten links.
//
// The transform is line oriented and best effort: lines that are not links,
// or do not tokenize as vless://<identifier>@<authority>[?<query>], are
// skipped without error. Only an empty result is reported, as ErrNoLinks.
package linkrewriter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLinks            = errors.New("no convertible links found")
	ErrTargetHostRequired = errors.New("target host is required")
	ErrUnknownDedupPolicy = errors.New("unknown dedup policy")
)

// DedupPolicy selects whether repeated output links are collapsed.
type DedupPolicy int

const (
	// DedupUnique keeps the first occurrence of every link.
	DedupUnique DedupPolicy = iota
	// DedupPreserve keeps every link, duplicates included.
	DedupPreserve
)

func (p DedupPolicy) String() string {
	switch p {
	case DedupUnique:
		return "unique"
	case DedupPreserve:
		return "preserve"
	default:
		return fmt.Sprintf("DedupPolicy(%d)", int(p))
	}
}

// ParseDedupPolicy accepts "unique" or "preserve" (empty means unique).
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unique":
		return DedupUnique, nil
	case "preserve":
		return DedupPreserve, nil
	default:
		return DedupUnique, fmt.Errorf("%w: %q", ErrUnknownDedupPolicy, s)
	}
}

type Options struct {
	Dedup DedupPolicy
	// RequireTargetHost rejects calls with a blank target host.
	RequireTargetHost bool
}

// Params are the caller supplied overrides. Blank fields leave the
// corresponding part of the link exactly as received.
type Params struct {
	TargetHost string
	ProxyIP    string
	Port       string
}

// substitute applies the proxyip and port(<digits>) replacements to a decoded path value.
func (p Params) substitute(path string) string {
	if host := strings.TrimSpace(p.ProxyIP); host != "" {
		path = proxyIPPattern.ReplaceAllLiteralString(path, host)
	}
	if port := strings.TrimSpace(p.Port); port != "" {
		path = portPattern.ReplaceAllLiteralString(path, port)
	}
	return path
}

// Rewriter is safe for concurrent use.
type Rewriter struct {
	opts Options
}

func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

func (r *Rewriter) Options() Options {
	return r.opts
}

// Rewrite converts every vless line of text, in input order.
func (r *Rewriter) Rewrite(text string, p Params) ([]string, error) {
	targetHost := NormalizeHost(p.TargetHost)
	if targetHost == "" && r.opts.RequireTargetHost {
		return nil, ErrTargetHostRequired
	}

	var (
		links []string
		seen  map[string]struct{}
	)
	if r.opts.Dedup == DedupUnique {
		seen = make(map[string]struct{})
	}

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" || !isCandidate(line) {
			continue
		}

		record, ok := parseLine(line)
		if !ok {
			continue
		}

		link := record.build(targetHost, rewriteQuery(record.query, p))
		if seen != nil {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
		}
		links = append(links, link)
	}

	if len(links) == 0 {
		return nil, ErrNoLinks
	}
	return links, nil
}

// Rewrite runs the transform with default options (deduplicated output,
// optional target host).
func Rewrite(text string, p Params) ([]string, error) {
	return New(Options{}).Rewrite(text, p)
}

// NormalizeHost strips a leading http:// or https:// and trailing slashes.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	for _, prefix := range []string{"https://", "http://"} {
		if len(host) >= len(prefix) && strings.EqualFold(host[:len(prefix)], prefix) {
			host = host[len(prefix):]
			break
		}
	}
	return strings.TrimRight(host, "/")
}
