package testingx

import (
	"context"
	"testing"

	"github.com/openstatushq/openstatus-go/core/errors"
	"github.com/openstatushq/openstatus-go/core/identity"
)

// NewContextWithMeta returns a background context carrying meta, or a bare
// one when meta is nil.
func NewContextWithMeta(t testing.TB, meta *identity.RequestMeta) context.Context {
	t.Helper()
	if meta == nil {
		return context.Background()
	}
	return identity.WithMeta(context.Background(), meta)
}

// NewContextWithRequestID returns a background context carrying id, which
// the request-id interceptor forwards as X-Request-Id.
func NewContextWithRequestID(t testing.TB, id string) context.Context {
	t.Helper()
	return identity.WithRequestID(context.Background(), id)
}

// AssertError fails the test unless err classifies as want.
func AssertError(t testing.TB, err error, want errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error with code %s, got nil", want)
		return
	}
	if got := errors.CodeOf(err); got != want {
		t.Errorf("want code %s, got %s (%v)", want, got, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
