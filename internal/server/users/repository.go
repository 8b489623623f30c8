package users

import (
	"context"
)

// Repository is the narrow persistence contract the workflow depends on.
//
// Create must enforce email uniqueness atomically in its write path (a
// unique constraint, a single guarded insert) and report a duplicate as
// common.ErrorAlreadyExists. A separate lookup before the insert is not an
// acceptable implementation: two concurrent signups for the same email must
// resolve to exactly one winner.
type Repository interface {
	// Create persists a new user, assigning ID and timestamps.
	Create(ctx context.Context, user *User) (*User, error)
	// GetByEmail returns the user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
