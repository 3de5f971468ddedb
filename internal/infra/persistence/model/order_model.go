package model

import (
	"time"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Orders are append-only; item rows are never updated after creation.
type OrderModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	UserID        int64            `gorm:"not null;index"`
	RecipientName string           `gorm:"type:varchar(100);not null"`
	PostalCode    string           `gorm:"type:varchar(8);not null"`
	Prefecture    string           `gorm:"type:varchar(50);not null"`
	City          string           `gorm:"type:varchar(100);not null"`
	StreetAddress string           `gorm:"type:varchar(200);not null"`
	ContactEmail  string           `gorm:"type:varchar(255)"`
	ContactPhone  string           `gorm:"type:varchar(20)"`
	PaymentMethod string           `gorm:"type:varchar(30);not null"`
	Notes         string           `gorm:"type:text"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	TotalAmount   int64            `gorm:"not null"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// ProductName and PriceAtPurchase are the checkout-time snapshot and do not
// reference the products table.
type OrderItemModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderID         int64  `gorm:"not null;index"`
	ProductID       int64  `gorm:"not null"`
	ProductName     string `gorm:"type:varchar(200);not null"`
	PriceAtPurchase int64  `gorm:"not null"`
	Quantity        int    `gorm:"not null;check:quantity > 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
