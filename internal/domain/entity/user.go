package entity

import (
	"time"
)

// User is a storefront account. IsAdmin grants catalog administration;
// demoting the last remaining administrator is forbidden by the admin
// domain service.
type User struct {
	ID           UserID
	Name         string
	Email        Email
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
