package clientx

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture runs interceptor around a terminal function that records the
// request headers it sees.
func capture(t *testing.T, interceptor connect.Interceptor, req connect.AnyRequest) connect.AnyRequest {
	t.Helper()
	var seen connect.AnyRequest
	next := connect.UnaryFunc(func(ctx context.Context, r connect.AnyRequest) (connect.AnyResponse, error) {
		seen = r
		return connect.NewResponse(&healthv1.CheckResponse{}), nil
	})
	_, err := interceptor.WrapUnary(next)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, seen)
	return seen
}

func TestAuthInterceptor(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		preset string
		want   string
	}{
		{"raw key", "abc123", "", "abc123"},
		{"bearer form passed verbatim", "Bearer abc123", "", "Bearer abc123"},
		{"per-call value wins", "abc123", "override", "override"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&healthv1.CheckRequest{})
			req.Header().Set("X-Other", "kept")
			if tt.preset != "" {
				req.Header().Set(HeaderAPIKey, tt.preset)
			}

			seen := capture(t, AuthInterceptor(tt.key), req)
			assert.Equal(t, tt.want, seen.Header().Get(HeaderAPIKey))
			assert.Equal(t, "kept", seen.Header().Get("X-Other"))
			assert.Len(t, seen.Header(), 2)
		})
	}
}

func TestAuthInterceptor_EmptyKey(t *testing.T) {
	seen := capture(t, AuthInterceptor(""), connect.NewRequest(&healthv1.CheckRequest{}))
	_, present := seen.Header()[http.CanonicalHeaderKey(HeaderAPIKey)]
	assert.False(t, present)
	assert.Empty(t, seen.Header())
}
