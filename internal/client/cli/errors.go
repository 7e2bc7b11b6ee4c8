package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/divergentflow/internal/client/client"
)

// describeError turns an error from a command into the line shown to the
// user. action completes "Failed to ...".
func describeError(action string, err error) string {
	var e *client.Error
	if !errors.As(err, &e) {
		return fmt.Sprintf("Failed to %s: %v", action, err)
	}

	switch e.Kind {
	case client.KindPrecondition:
		return e.Detail
	case client.KindTransport:
		return "Request failed: server unavailable"
	case client.KindValidation:
		return fmt.Sprintf("Failed to %s: %s", action, client.ErrInvalidServerData)
	case client.KindAPI:
		msg := fmt.Sprintf("Failed to %s: %s (HTTP %d)", action, e.Detail, e.Status)
		if errors.Is(e, client.ErrUnauthorized) {
			msg += ". Please log in again"
		}
		return msg
	default:
		return fmt.Sprintf("Failed to %s: %v", action, err)
	}
}
