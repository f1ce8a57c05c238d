package models

import (
	"time"

	"gorm.io/datatypes"
)

type CartStatus string

const (
	CartStatusBought    CartStatus = "bought"
	CartStatusAbandoned CartStatus = "abandoned"
	CartStatusEmpty     CartStatus = "empty"
)

// CartItem is a denormalized line item stored inside the cart's JSON column.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice *int   `json:"sale_price,omitempty"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// UserCart is the single current cart for a customer, keyed by email. Every
// client-side cart mutation overwrites the whole row, last write wins.
type UserCart struct {
	ID        uint                          `gorm:"primaryKey" json:"id"`
	Email     string                        `gorm:"uniqueIndex;not null" json:"user_email"`
	Name      string                        `json:"user_name,omitempty"`
	Items     datatypes.JSONSlice[CartItem] `json:"items"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`

	// Status is derived at read time by correlating against orders for the
	// same email. Never stored.
	Status CartStatus `gorm:"-" json:"cart_status,omitempty"`
}

// DeriveStatus reports the cart's state given whether any order exists for
// the same email. The bought check comes first: a cart emptied after a
// purchase still reads as bought.
func (c *UserCart) DeriveStatus(hasOrder bool) CartStatus {
	switch {
	case hasOrder:
		return CartStatusBought
	case len(c.Items) == 0:
		return CartStatusEmpty
	default:
		return CartStatusAbandoned
	}
}
