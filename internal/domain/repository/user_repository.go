package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the storage-level unique constraint on
// email rejects a write. Concurrent identical-email registrations are settled
// here, not by the prior existence check.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrAdminConditionFailed is returned by DemoteIfNotLastAdmin when the
// conditional update matched no row: the user is not an admin, or is the
// last one left.
var ErrAdminConditionFailed = errors.New("admin demotion condition not met")

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)

	// Create persists a new user and assigns their id.
	Create(ctx context.Context, user *entity.User) error

	// CountAdmins returns the number of administrator accounts.
	CountAdmins(ctx context.Context) (int64, error)

	// PromoteToAdmin grants administrator rights to the user.
	PromoteToAdmin(ctx context.Context, id entity.UserID) error

	// DemoteIfNotLastAdmin atomically revokes administrator rights, but only
	// when at least one other administrator remains. Returns
	// ErrAdminConditionFailed when the condition does not hold.
	DemoteIfNotLastAdmin(ctx context.Context, id entity.UserID) error
}
