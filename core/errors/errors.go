// Package errors classifies SDK and RPC failures into a small set of codes.
//
// Overview:
//   - Responsibility: Uniform error codes over *connect.Error, context errors and SDK errors
//   - Key Types: Code for classification, E for errors the CLI raises and annotates with the failing command
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library wrapping (errors.Is / errors.As)
//
// Usage:
//
//	_, err := client.Monitor.ListMonitors(ctx, connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
//	switch errors.CodeOf(err) {
//	case errors.CodeUnauthenticated:
//		// ask the operator for a key
//	case errors.CodeUnavailable:
//		// caller-owned retry decision
//	}
package errors

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// Code represents an error classification code.
type Code string

// Codes aligned with Connect/gRPC status codes.
const (
	CodeCanceled           Code = "CANCELED"
	CodeUnknown            Code = "UNKNOWN"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

var connectCodes = map[connect.Code]Code{
	connect.CodeCanceled:           CodeCanceled,
	connect.CodeUnknown:            CodeUnknown,
	connect.CodeInvalidArgument:    CodeInvalidArgument,
	connect.CodeDeadlineExceeded:   CodeDeadlineExceeded,
	connect.CodeNotFound:           CodeNotFound,
	connect.CodeAlreadyExists:      CodeAlreadyExists,
	connect.CodePermissionDenied:   CodePermissionDenied,
	connect.CodeResourceExhausted:  CodeResourceExhausted,
	connect.CodeFailedPrecondition: CodeFailedPrecondition,
	connect.CodeAborted:            CodeAborted,
	connect.CodeOutOfRange:         CodeOutOfRange,
	connect.CodeUnimplemented:      CodeUnimplemented,
	connect.CodeInternal:           CodeInternal,
	connect.CodeUnavailable:        CodeUnavailable,
	connect.CodeDataLoss:           CodeDataLoss,
	connect.CodeUnauthenticated:    CodeUnauthenticated,
}

// E represents a structured error with code, operation and message.
type E struct {
	Code Code   // Error classification code
	Op   string // Operation that failed
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message
}

// Error implements the error interface.
func (e *E) Error() string {
	prefix := string(e.Code)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Msg)
	}
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{Code: code, Msg: msg}
}

// Wrap creates a structured error around err. The code of err is kept
// when code is empty.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	if code == "" {
		code = CodeOf(err)
	}
	return &E{Code: code, Op: op, Err: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if code == "" {
		code = CodeOf(err)
	}
	return &E{Code: code, Op: op, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the classification code from err.
//
// Resolution order: *E in the chain, *connect.Error in the chain, bare
// context cancellation or deadline errors. Any other non-nil error is
// CodeUnknown; nil yields the empty code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *E
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		if code, ok := connectCodes[ce.Code()]; ok {
			return code
		}
		return CodeUnknown
	}
	switch {
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	}
	return CodeUnknown
}

// IsCode reports whether err classifies as code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsCanceled reports whether err is a cancellation rather than a failure.
func IsCanceled(err error) bool {
	return IsCode(err, CodeCanceled)
}

// IsRetryable reports whether a caller may reasonably retry the call.
// The SDK itself never retries.
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case CodeUnavailable, CodeResourceExhausted, CodeDeadlineExceeded, CodeAborted:
		return true
	default:
		return false
	}
}

// Message returns the server-provided message for RPC errors, the message
// of an *E without its code and operation, and err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *connect.Error
	if errors.As(err, &ce) && ce.Message() != "" {
		return ce.Message()
	}
	var e *E
	if errors.As(err, &e) {
		switch {
		case e.Err != nil && e.Msg != "":
			return e.Msg + ": " + Message(e.Err)
		case e.Err != nil:
			return Message(e.Err)
		default:
			return e.Msg
		}
	}
	return err.Error()
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
