// Package identity carries per-call request metadata in a context.
//
// Overview:
//   - Responsibility: Store and retrieve request metadata forwarded on outbound RPCs
//   - Key Types: RequestMeta
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Lookups return a boolean to indicate presence
//
// Usage:
//
//	ctx = identity.WithRequestID(ctx, "req-123")
//	res, err := client.Health.Check(ctx, connect.NewRequest(&healthv1.CheckRequest{}))
package identity

import "context"

// RequestMeta contains metadata forwarded with outbound requests.
type RequestMeta struct {
	RequestID string // Correlation identifier sent as X-Request-Id
	UserAgent string // Optional User-Agent override
}

type contextKey string

const metaKey contextKey = "meta"

// WithMeta stores request metadata in the context.
func WithMeta(ctx context.Context, m *RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey, m)
}

// MetaFrom retrieves request metadata from the context.
func MetaFrom(ctx context.Context) (*RequestMeta, bool) {
	m, ok := ctx.Value(metaKey).(*RequestMeta)
	return m, ok && m != nil
}

// WithRequestID returns a context carrying id as its request identifier.
// Other metadata already present in ctx is preserved.
func WithRequestID(ctx context.Context, id string) context.Context {
	meta := RequestMeta{RequestID: id}
	if existing, ok := MetaFrom(ctx); ok {
		meta.UserAgent = existing.UserAgent
	}
	return WithMeta(ctx, &meta)
}

// RequestIDFrom returns the request identifier stored in ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	m, ok := MetaFrom(ctx)
	if !ok || m.RequestID == "" {
		return "", false
	}
	return m.RequestID, true
}
