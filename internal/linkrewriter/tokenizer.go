package linkrewriter

import (
	"regexp"
	"strings"
)

const (
	linkScheme = "vless://"
	pathKey    = "path"
)

var (
	proxyIPPattern = regexp.MustCompile(`(?i)proxyip`)
	portPattern    = regexp.MustCompile(`(?i)port\(\d+\)`)
)

// linkRecord is one link extracted from a subscription line.
type linkRecord struct {
	identifier string
	authority  string
	query      string
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func isCandidate(line string) bool {
	return strings.Contains(strings.ToLower(line), linkScheme)
}

// parseLine tokenizes vless://<identifier>@<authority>[?<query>] out of the
// first whitespace-delimited token of line.
func parseLine(line string) (linkRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return linkRecord{}, false
	}

	token := stripFragment(fields[0])
	if len(token) < len(linkScheme) || !strings.EqualFold(token[:len(linkScheme)], linkScheme) {
		return linkRecord{}, false
	}
	rest := token[len(linkScheme):]

	identifier, rest, ok := strings.Cut(rest, "@")
	if !ok || identifier == "" {
		return linkRecord{}, false
	}

	authority, query, _ := strings.Cut(rest, "?")
	if authority == "" {
		return linkRecord{}, false
	}

	return linkRecord{
		identifier: identifier,
		authority:  authority,
		query:      stripFragment(query),
	}, true
}

func stripFragment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// rewriteQuery rewrites the first top-level path= pair and leaves every other
// pair byte-for-byte as received.
func rewriteQuery(query string, p Params) string {
	if query == "" {
		return ""
	}

	pairs := strings.Split(query, "&")
	for i, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key != pathKey {
			continue
		}
		pairs[i] = key + "=" + encodeComponent(p.substitute(decodeComponent(value)))
		break
	}
	return strings.Join(pairs, "&")
}

func (r linkRecord) build(targetHost, query string) string {
	var b strings.Builder
	if targetHost != "" {
		b.WriteString("https://")
		b.WriteString(targetHost)
		b.WriteString("/sub?uuid=")
		b.WriteString(encodeComponent(r.identifier))
		if query != "" {
			b.WriteByte('&')
			b.WriteString(query)
		}
		return b.String()
	}

	b.WriteString(linkScheme)
	b.WriteString(r.identifier)
	b.WriteByte('@')
	b.WriteString(r.authority)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return b.String()
}
