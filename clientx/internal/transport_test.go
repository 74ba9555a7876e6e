package internal

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
)

func TestNewRoundTripper(t *testing.T) {
	t.Run("h2c for cleartext", func(t *testing.T) {
		rt := NewRoundTripper("http://127.0.0.1:8080/rpc", HTTP2)
		h2, ok := rt.(*http2.Transport)
		require.True(t, ok, "got %T", rt)
		assert.True(t, h2.AllowHTTP)
		assert.NotNil(t, h2.DialTLSContext)
	})

	t.Run("negotiated h2 for tls", func(t *testing.T) {
		rt := NewRoundTripper("https://api.openstatus.dev/rpc", HTTP2)
		tr, ok := rt.(*http.Transport)
		require.True(t, ok, "got %T", rt)
		assert.True(t, tr.ForceAttemptHTTP2)
		assert.Contains(t, tr.TLSNextProto, "h2")
	})

	t.Run("http/1.1", func(t *testing.T) {
		rt := NewRoundTripper("http://127.0.0.1:8080", HTTP1)
		tr, ok := rt.(*http.Transport)
		require.True(t, ok, "got %T", rt)
		assert.False(t, tr.ForceAttemptHTTP2)
		assert.NotNil(t, tr.TLSNextProto)
		assert.Empty(t, tr.TLSNextProto)
	})

	t.Run("unknown version means http/2", func(t *testing.T) {
		_, ok := NewRoundTripper("http://localhost", "").(*http2.Transport)
		assert.True(t, ok)
	})
}

func TestIsCleartext(t *testing.T) {
	assert.True(t, IsCleartext("http://localhost"))
	assert.True(t, IsCleartext("HTTP://localhost"))
	assert.False(t, IsCleartext("https://localhost"))
	assert.False(t, IsCleartext("localhost"))
	assert.False(t, IsCleartext(""))
}
