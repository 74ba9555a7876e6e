package clientx

import (
	"context"

	"connectrpc.com/connect"
)

// HeaderAPIKey carries the workspace API key on every authenticated call.
const HeaderAPIKey = "x-openstatus-key"

// AuthInterceptor sets HeaderAPIKey to apiKey, sent verbatim. A value already
// present on the request, set per call, is left untouched. No other header
// is modified. An empty apiKey yields a pass-through interceptor.
func AuthInterceptor(apiKey string) connect.UnaryInterceptorFunc {
	if apiKey == "" {
		return func(next connect.UnaryFunc) connect.UnaryFunc { return next }
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Header().Get(HeaderAPIKey) == "" {
				req.Header().Set(HeaderAPIKey, apiKey)
			}
			return next(ctx, req)
		}
	}
}
