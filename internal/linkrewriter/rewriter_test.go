package linkrewriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriter_Rewrite(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		params  Params
		want    []string
		wantErr error
	}{
		{
			name:   "path without tokens is left as received",
			text:   "vless://abc-123@1.2.3.4:443?path=%2Fws%3Fed%3D2048&type=ws#remark",
			params: Params{ProxyIP: "9.9.9.9", Port: "8443"},
			want:   []string{"vless://abc-123@1.2.3.4:443?path=%2Fws%3Fed%3D2048&type=ws"},
		},
		{
			name:   "proxyip and port tokens are replaced",
			text:   "vless://abc-123@1.2.3.4:443?path=%2Fpath%2Fproxyip%3Aport%282048%29&type=ws#remark",
			params: Params{ProxyIP: "9.9.9.9", Port: "8443"},
			want:   []string{"vless://abc-123@1.2.3.4:443?path=%2Fpath%2F9.9.9.9%3A8443&type=ws"},
		},
		{
			name:   "target host builds sub url and drops authority",
			text:   "vless://abc-123@1.2.3.4:443?path=%2Fws%3Fed%3D2048&type=ws#remark",
			params: Params{TargetHost: "https://example.com/"},
			want:   []string{"https://example.com/sub?uuid=abc-123&path=%2Fws%3Fed%3D2048&type=ws"},
		},
		{
			name:   "target host without query",
			text:   "vless://id@h:1",
			params: Params{TargetHost: "sub.example.com"},
			want:   []string{"https://sub.example.com/sub?uuid=id"},
		},
		{
			name:   "identifier is percent-encoded in uuid",
			text:   "vless://a+b/c@h:1?type=ws",
			params: Params{TargetHost: "example.com"},
			want:   []string{"https://example.com/sub?uuid=a%2Bb%2Fc&type=ws"},
		},
		{
			name: "link without query",
			text: "vless://id@h:1",
			want: []string{"vless://id@h:1"},
		},
		{
			name:   "undecodable path falls back to raw value",
			text:   "vless://id@h:1?path=proxyip%zz",
			params: Params{ProxyIP: "1.1.1.1"},
			want:   []string{"vless://id@h:1?path=1.1.1.1%25zz"},
		},
		{
			name:   "replacements are case-insensitive and global",
			text:   "vless://id@h:1?path=%2FPROXYIP%2FPort(80)%2FpOrT(443)",
			params: Params{ProxyIP: "x.y", Port: "1"},
			want:   []string{"vless://id@h:1?path=%2Fx.y%2F1%2F1"},
		},
		{
			name:   "port with non-digits is untouched",
			text:   "vless://id@h:1?path=%2Fport(abc)",
			params: Params{Port: "1"},
			want:   []string{"vless://id@h:1?path=%2Fport(abc)"},
		},
		{
			name:   "only the first path pair is rewritten",
			text:   "vless://id@h:1?path=proxyip&path=proxyip",
			params: Params{ProxyIP: "h"},
			want:   []string{"vless://id@h:1?path=h&path=proxyip"},
		},
		{
			name:   "path-like data in other pairs is not matched",
			text:   "vless://id@h:1?spath=proxyip&ed=path%3Dproxyip&path=proxyip",
			params: Params{ProxyIP: "h"},
			want:   []string{"vless://id@h:1?spath=proxyip&ed=path%3Dproxyip&path=h"},
		},
		{
			name:   "query without path passes through",
			text:   "vless://id@h:1?type=ws&security=tls&sni=a%2Eb",
			params: Params{ProxyIP: "h", Port: "1"},
			want:   []string{"vless://id@h:1?type=ws&security=tls&sni=a%2Eb"},
		},
		{
			name: "trailing annotation is dropped",
			text: "  vless://id@h:1?type=ws by:someone  ",
			want: []string{"vless://id@h:1?type=ws"},
		},
		{
			name: "scheme is matched case-insensitively",
			text: "VLESS://id@h:1",
			want: []string{"vless://id@h:1"},
		},
		{
			name: "crlf input keeps line order",
			text: "vless://b@h:1\r\ntrojan://x@h:1\r\n\r\nvless://a@h:1\r\n",
			want: []string{"vless://b@h:1", "vless://a@h:1"},
		},
		{
			name:    "no vless lines",
			text:    "trojan://id@h:1\nss://abc\nplain text",
			wantErr: ErrNoLinks,
		},
		{
			name:    "empty input",
			text:    "",
			wantErr: ErrNoLinks,
		},
		{
			name: "malformed candidates are skipped",
			text: strings.Join([]string{
				"vless://noat",
				"vless://@h:1",
				"vless://id@",
				"vless://id@?path=x",
				"name vless://id@h:1",
			}, "\n"),
			wantErr: ErrNoLinks,
		},
	}

	rw := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rw.Rewrite(tt.text, tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriter_DedupPolicy(t *testing.T) {
	text := strings.Join([]string{
		"vless://id@h:1?type=ws#first",
		"vless://id2@h:1",
		"vless://id@h:1?type=ws#second",
	}, "\n")

	t.Run("unique keeps first occurrence", func(t *testing.T) {
		got, err := New(Options{Dedup: DedupUnique}).Rewrite(text, Params{})
		require.NoError(t, err)
		assert.Equal(t, []string{"vless://id@h:1?type=ws", "vless://id2@h:1"}, got)
	})

	t.Run("preserve keeps duplicates", func(t *testing.T) {
		got, err := New(Options{Dedup: DedupPreserve}).Rewrite(text, Params{})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"vless://id@h:1?type=ws",
			"vless://id2@h:1",
			"vless://id@h:1?type=ws",
		}, got)
	})

	t.Run("distinct authorities collapse under target host", func(t *testing.T) {
		got, err := Rewrite("vless://id@a:1?type=ws\nvless://id@b:2?type=ws", Params{TargetHost: "example.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/sub?uuid=id&type=ws"}, got)
	})
}

func TestRewriter_RequireTargetHost(t *testing.T) {
	rw := New(Options{RequireTargetHost: true})

	for _, host := range []string{"", "   ", "https://", "http:///"} {
		_, err := rw.Rewrite("vless://id@h:1", Params{TargetHost: host})
		assert.ErrorIs(t, err, ErrTargetHostRequired, "host %q", host)
	}

	got, err := rw.Rewrite("vless://id@h:1", Params{TargetHost: "example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/sub?uuid=id"}, got)
}

func TestRewriter_BlankOverridesAreNoOps(t *testing.T) {
	text := "vless://id@h:1?type=ws&path=%2Fproxyip%3Aport(1)&security=tls#n"

	got, err := Rewrite(text, Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"vless://id@h:1?type=ws&path=%2Fproxyip%3Aport(1)&security=tls"}, got)
}

func TestRewriter_Deterministic(t *testing.T) {
	text := "vless://b@h:1?path=%2Fproxyip\nvless://a@h:2?path=%2Fport(9)\nvless://b@h:1?path=%2Fproxyip"
	params := Params{TargetHost: "example.com", ProxyIP: "1.2.3.4", Port: "443"}

	first, err := Rewrite(text, params)
	require.NoError(t, err)
	second, err := Rewrite(text, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		"https://example.com/sub?uuid=b&path=%2F1.2.3.4",
		"https://example.com/sub?uuid=a&path=%2F443",
	}, first)
}

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://a.com/", want: "a.com"},
		{in: "HTTP://a.com//", want: "a.com"},
		{in: " a.com ", want: "a.com"},
		{in: "a.com/path/", want: "a.com/path"},
		{in: "https://", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHost(tt.in))
		})
	}
}

func TestParseDedupPolicy(t *testing.T) {
	p, err := ParseDedupPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DedupUnique, p)

	p, err = ParseDedupPolicy(" Preserve ")
	require.NoError(t, err)
	assert.Equal(t, DedupPreserve, p)
	assert.Equal(t, "preserve", p.String())

	_, err = ParseDedupPolicy("sometimes")
	assert.ErrorIs(t, err, ErrUnknownDedupPolicy)
}
