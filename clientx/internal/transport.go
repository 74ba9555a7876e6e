// Package internal builds the HTTP round trippers behind clientx.Transport.
package internal

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http2"
)

// Protocol versions accepted by NewRoundTripper.
const (
	HTTP1 = "1.1"
	HTTP2 = "2"
)

const (
	dialTimeout     = 30 * time.Second
	keepAlive       = 30 * time.Second
	idleConnTimeout = 90 * time.Second
	tlsTimeout      = 10 * time.Second
)

// NewRoundTripper returns a round tripper for baseURL speaking version.
// Any version other than HTTP1 selects HTTP/2: negotiated through ALPN for
// https URLs and spoken with prior knowledge (h2c) for http URLs.
func NewRoundTripper(baseURL, version string) http.RoundTripper {
	if version == HTTP1 {
		return newHTTP1Transport()
	}
	if IsCleartext(baseURL) {
		return newH2CTransport()
	}
	return newHTTP2Transport()
}

// IsCleartext reports whether baseURL uses the http scheme.
func IsCleartext(baseURL string) bool {
	return len(baseURL) >= len("http://") && strings.EqualFold(baseURL[:len("http://")], "http://")
}

func dialer() *net.Dialer {
	return &net.Dialer{Timeout: dialTimeout, KeepAlive: keepAlive}
}

func newHTTP1Transport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer().DialContext,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsTimeout,
		// A non-nil empty map disables the automatic HTTP/2 upgrade.
		TLSNextProto: map[string]func(string, *tls.Conn) http.RoundTripper{},
	}
}

func newHTTP2Transport() *http.Transport {
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer().DialContext,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsTimeout,
		ForceAttemptHTTP2:   true,
	}
	// Fails only when h2 is already registered on t.
	_, _ = http2.ConfigureTransports(t)
	return t
}

func newH2CTransport() *http2.Transport {
	d := dialer()
	return &http2.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return d.DialContext(ctx, network, addr)
		},
		IdleConnTimeout: idleConnTimeout,
	}
}
