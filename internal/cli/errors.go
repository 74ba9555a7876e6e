package cli

import (
	"fmt"

	"github.com/openstatushq/openstatus-go/core/errors"
)

// Exit codes.
const (
	exitError    = 1
	exitAuth     = 2
	exitNotFound = 3
	exitCanceled = 130
)

// formatError renders err for the terminal, with a hint for the codes a
// user can act on.
func formatError(err error) string {
	msg := "Error: " + errors.Message(err)
	var e *errors.E
	if errors.As(err, &e) && e.Op != "" {
		msg = fmt.Sprintf("Error: %s: %s", e.Op, errors.Message(err))
	}

	switch errors.CodeOf(err) {
	case errors.CodeUnauthenticated:
		return msg + "\nHint: set OPENSTATUS_API_KEY or pass --api-key."
	case errors.CodePermissionDenied:
		return msg + "\nHint: the API key does not grant access to this workspace resource."
	case errors.CodeUnavailable:
		return msg + "\nHint: check the API URL and your network connection."
	case errors.CodeUnimplemented:
		return msg + "\nHint: the API URL may be missing the /rpc path."
	default:
		return msg
	}
}

func exitCode(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeUnauthenticated, errors.CodePermissionDenied:
		return exitAuth
	case errors.CodeNotFound:
		return exitNotFound
	case errors.CodeCanceled:
		return exitCanceled
	default:
		return exitError
	}
}
