package rules

import (
	"fmt"
	"net/http"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// FailureReason turns a client error into the short text shown to the user
func FailureReason(err error) string {
	if errors.IsDeadlineExceeded(err) {
		return "request timed out"
	}
	if status, ok := errors.GetMeta(err)["status"].(int); ok {
		return fmt.Sprintf("%d %s", status, http.StatusText(status))
	}

	var inner *errors.Error
	if errors.As(err, &inner) && inner.Cause != nil {
		return inner.Cause.Error()
	}
	return err.Error()
}
