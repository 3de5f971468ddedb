// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"

	domainerrors "storefront/internal/domain/errors"
)

// ProductID identifies a catalog product. The zero value marks a freshly
// minted aggregate that has not been persisted yet.
type ProductID int64

// NewProductID validates and wraps a persisted product identifier.
func NewProductID(value int64) (ProductID, error) {
	if value <= 0 {
		return 0, domainerrors.NewValidationError("Product ID must be a positive integer")
	}

	return ProductID(value), nil
}

// IsZero reports whether the id has been assigned by the store.
func (id ProductID) IsZero() bool {
	return id == 0
}

// Int64 returns the wrapped primitive.
func (id ProductID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UserID identifies a storefront account. The zero value marks an
// unpersisted aggregate.
type UserID int64

// NewUserID validates and wraps a persisted user identifier.
func NewUserID(value int64) (UserID, error) {
	if value <= 0 {
		return 0, domainerrors.NewValidationError("User ID must be a positive integer")
	}

	return UserID(value), nil
}

// IsZero reports whether the id has been assigned by the store.
func (id UserID) IsZero() bool {
	return id == 0
}

// Int64 returns the wrapped primitive.
func (id UserID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OrderID identifies a placed order. The zero value marks an unpersisted
// aggregate.
type OrderID int64

// NewOrderID validates and wraps a persisted order identifier.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return 0, domainerrors.NewValidationError("Order ID must be a positive integer")
	}

	return OrderID(value), nil
}

// IsZero reports whether the id has been assigned by the store.
func (id OrderID) IsZero() bool {
	return id == 0
}

// Int64 returns the wrapped primitive.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
