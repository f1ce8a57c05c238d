package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	// Fulfillment flow. Paid orders are never cancelled, so there is no
	// cancelled state.
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

const PaymentStatusPaid = "Paid"

// ParseOrderStatus maps a client-supplied string to an OrderStatus.
// Membership is the only check; an admin may move an order backward to
// correct a mistake.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(string(OrderStatusConfirmed)):
		return OrderStatusConfirmed, nil
	case strings.ToLower(string(OrderStatusShipped)):
		return OrderStatusShipped, nil
	case strings.ToLower(string(OrderStatusDelivered)):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// OrderItem is a snapshot of a purchased line item. It is stored as JSON on
// the order, deliberately decoupled from live Product rows so later catalog
// edits never alter order history.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

type Order struct {
	ID              uint                           `gorm:"primaryKey" json:"id"`
	UserID          *uint                          `json:"user_id,omitempty"`
	Name            string                         `gorm:"not null" json:"name"`
	Email           string                         `gorm:"index;not null" json:"email"`
	Phone           string                         `gorm:"not null" json:"phone"`
	BillingAddress  string                         `gorm:"type:text" json:"billing_address"`
	ShippingAddress string                         `gorm:"type:text" json:"shipping_address"` // pincode appended as suffix
	Items           datatypes.JSONSlice[OrderItem] `json:"items"`
	TotalAmount     int                            `gorm:"not null" json:"total_amount"`
	PaymentStatus   string                         `json:"payment_status"`
	OrderStatus     OrderStatus                    `gorm:"type:varchar(20);default:'Confirmed'" json:"order_status"`
	SpecialNotes    string                         `gorm:"type:text" json:"special_notes,omitempty"`
	// Gateway references. The payment id carries a partial unique index so a
	// retried create after an ambiguous failure lands on the existing row.
	RazorpayPaymentID string    `gorm:"uniqueIndex:idx_orders_rzp_payment,where:razorpay_payment_id <> ''" json:"razorpay_payment_id,omitempty"`
	RazorpayOrderID   string    `json:"razorpay_order_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
