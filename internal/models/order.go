package models

import "gorm.io/gorm"

// OrderItem represents a single product within an order. Price is the
// product's unit price captured at order-creation time; it does not track
// later price changes. OrderID is nullable so a deleted order leaves its
// line items behind with the reference cleared (ON DELETE SET NULL).
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   *string `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a customer purchase. Created once by the order workflow
// and never mutated afterward.
type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string      `json:"customer_id" gorm:"type:varchar(36);index"`
	Customer   Customer    `json:"customer" gorm:"foreignKey:CustomerID"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
