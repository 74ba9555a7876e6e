package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "monitor name is required")
	require.Error(t, err)

	var e *E
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeInvalidArgument, e.Code)
	assert.Equal(t, "INVALID_ARGUMENT: monitor name is required", err.Error())
}

func TestWrap(t *testing.T) {
	original := connect.NewError(connect.CodeNotFound, errors.New("monitor 42 not found"))

	wrapped := Wrap("", "monitors get", original)
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.ErrorIs(t, wrapped, original)
	assert.Contains(t, wrapped.Error(), "monitors get")

	assert.Nil(t, Wrap(CodeInternal, "noop", nil))
	assert.Nil(t, Wrapf(CodeInternal, "noop", nil, "ignored"))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(CodeInternal, "render", errors.New("disk full"), "writing %s", "table")
	assert.Equal(t, "render: INTERNAL: writing table: disk full", err.Error())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), CodeUnknown},
		{"structured", New(CodeAlreadyExists, "dup"), CodeAlreadyExists},
		{"unauthenticated", connect.NewError(connect.CodeUnauthenticated, errors.New("missing key")), CodeUnauthenticated},
		{"permission denied", connect.NewError(connect.CodePermissionDenied, nil), CodePermissionDenied},
		{"not found", connect.NewError(connect.CodeNotFound, nil), CodeNotFound},
		{"invalid argument", connect.NewError(connect.CodeInvalidArgument, nil), CodeInvalidArgument},
		{"resource exhausted", connect.NewError(connect.CodeResourceExhausted, nil), CodeResourceExhausted},
		{"unavailable", connect.NewError(connect.CodeUnavailable, nil), CodeUnavailable},
		{"internal", connect.NewError(connect.CodeInternal, nil), CodeInternal},
		{"canceled rpc", connect.NewError(connect.CodeCanceled, context.Canceled), CodeCanceled},
		{"wrapped connect", fmt.Errorf("list: %w", connect.NewError(connect.CodeNotFound, nil)), CodeNotFound},
		{"bare canceled", context.Canceled, CodeCanceled},
		{"bare deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), CodeDeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(connect.NewError(connect.CodeUnavailable, nil)))
	assert.True(t, IsRetryable(connect.NewError(connect.CodeResourceExhausted, nil)))
	assert.False(t, IsRetryable(connect.NewError(connect.CodeUnauthenticated, nil)))
	assert.False(t, IsRetryable(connect.NewError(connect.CodeCanceled, nil)))
	assert.False(t, IsRetryable(nil))
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, IsCanceled(connect.NewError(connect.CodeCanceled, context.Canceled)))
	assert.False(t, IsCanceled(connect.NewError(connect.CodeUnavailable, nil)))
	assert.False(t, IsCanceled(nil))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "invalid api key", Message(connect.NewError(connect.CodeUnauthenticated, errors.New("invalid api key"))))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Empty(t, Message(nil))

	notFound := connect.NewError(connect.CodeNotFound, errors.New("monitor 42 not found"))
	assert.Equal(t, "monitor 42 not found", Message(Wrap("", "monitors get", notFound)))
	assert.Equal(t, "monitor name is required", Message(New(CodeInvalidArgument, "monitor name is required")))
	assert.Equal(t, "writing table: disk full", Message(Wrapf(CodeInternal, "render", errors.New("disk full"), "writing %s", "table")))
}
