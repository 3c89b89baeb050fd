package commands

import (
	"context"
	"errors"

	"fleet/internal/pkg/errs"
)

// wrapTimeout converts a context deadline or cancellation into a
// TimeoutError naming the operation. By the time the handler returns, the
// deferred rollback has already released any row locks the transaction held.
func wrapTimeout(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewTimeoutErrorWithCause(operation, err)
	}
	return err
}
