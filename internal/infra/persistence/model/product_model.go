// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Price is stored in the smallest currency unit; the check constraints
// back up the domain rules at the storage level.
type ProductModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Price       int64  `gorm:"not null;check:price > 0"`
	Stock       int    `gorm:"not null;default:0;check:stock >= 0"`
	Category    string `gorm:"type:varchar(50);not null;index"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	ImageURL    string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
