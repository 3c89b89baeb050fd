package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
)

// IdentityUser is the subset of the identity service's user record that
// driver registration needs.
type IdentityUser struct {
	ID       kernel.UUID
	FullName string
	Active   bool
}

// IdentityClient is a read-only view of the external identity service.
// Driver registration uses it to verify the user exists before creating a
// profile. Failures are mapped to the error taxonomy: an unknown user is an
// ObjectNotFoundError, an unreachable or slow service a TimeoutError.
type IdentityClient interface {
	// GetUser fetches the identity record for a user ID.
	GetUser(ctx context.Context, userID kernel.UUID) (IdentityUser, error)
}
