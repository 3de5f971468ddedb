package model

import (
	"time"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// The unique index on UserID enforces at most one cart per user.
type CartModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;uniqueIndex"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// The composite unique index keeps one line per product within a cart.
type CartItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CartID    int64 `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int   `gorm:"not null;check:quantity > 0"`
	AddedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
