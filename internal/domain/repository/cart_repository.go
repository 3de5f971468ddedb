package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is a domain-specific error returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations for cart persistence.
// A cart is keyed by its owning user; there is at most one per user.
type CartRepository interface {
	// FindByUserID retrieves the user's cart with all of its lines.
	FindByUserID(ctx context.Context, userID entity.UserID) (*entity.Cart, error)

	// Save persists the cart's current line set as one unit, creating the
	// cart on first use. The write replaces the stored lines wholesale so a
	// read-validate-write sequence inside a transaction cannot lose updates.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes every line from the user's cart in one operation.
	Clear(ctx context.Context, userID entity.UserID) error
}
