package orderControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
	"github.com/burnernzetohost/dariza-fabrics-sub000/utils"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID            *uint              `json:"user_id"`
	Name              string             `json:"name" binding:"required"`
	Email             string             `json:"email" binding:"required,email"`
	Phone             string             `json:"phone" binding:"required"`
	BillingAddress    string             `json:"billing_address" binding:"required"`
	ShippingAddress   string             `json:"shipping_address" binding:"required"`
	Pincode           string             `json:"pincode"`
	Items             []models.OrderItem `json:"items" binding:"required,min=1"`
	TotalAmount       int                `json:"total_amount" binding:"required,gt=0"`
	SpecialNotes      string             `json:"special_notes"`
	RazorpayPaymentID string             `json:"razorpay_payment_id"`
	RazorpayOrderID   string             `json:"razorpay_order_id"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

// -------- Core Logic --------

// CreateOrder persists a paid order. Items are stored as a JSON snapshot so
// later catalog changes never rewrite history. Creation is idempotent on the
// gateway payment id: a retried submit lands on the existing row.
func CreateOrder(db *gorm.DB, req CreateOrderRequest) (*models.Order, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if req.RazorpayPaymentID != "" {
		var existing models.Order
		err := db.Where("razorpay_payment_id = ?", req.RazorpayPaymentID).First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	shippingAddress := req.ShippingAddress
	if req.Pincode != "" {
		shippingAddress = shippingAddress + " - " + req.Pincode
	}

	order := models.Order{
		UserID:            req.UserID,
		Name:              req.Name,
		Email:             email,
		Phone:             req.Phone,
		BillingAddress:    req.BillingAddress,
		ShippingAddress:   shippingAddress,
		Items:             req.Items,
		TotalAmount:       req.TotalAmount,
		PaymentStatus:     models.PaymentStatusPaid,
		OrderStatus:       models.OrderStatusConfirmed,
		SpecialNotes:      req.SpecialNotes,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
	}

	if err := db.Create(&order).Error; err != nil {
		// A concurrent submit may have hit the payment-id unique index
		// first; surface that row instead of the conflict.
		if req.RazorpayPaymentID != "" {
			var existing models.Order
			if lookupErr := db.Where("razorpay_payment_id = ?", req.RazorpayPaymentID).
				First(&existing).Error; lookupErr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}

	return &order, true, nil
}

// -------- Handlers --------

// CreateOrderHandler records a verified payment as an order. 201 on a fresh
// row, 200 when the payment id already has one.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, created, err := CreateOrder(db, req)
		if err != nil {
			slog.Error("order create failed", slog.String("email", req.Email), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		if created {
			if err := utils.SendOrderConfirmationEmail(order.Email, order.ID); err != nil {
				slog.Error("order confirmation email failed", slog.Any("error", err))
			}
			BroadcastNewOrder(*order)
			c.JSON(http.StatusCreated, gin.H{"order": order})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// GetAllOrdersHandler lists orders newest first (admin).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			slog.Error("order list failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler fetches a single order.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			slog.Error("order fetch failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetUserOrdersHandler lists a customer's order history by email.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.ToLower(c.Param("email"))
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		var orders []models.Order
		if err := db.Where("email = ?", email).Order("created_at DESC").Find(&orders).Error; err != nil {
			slog.Error("user order list failed", slog.String("email", email), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler moves an order along the fulfillment flow
// (admin). Only enum membership is validated; backward moves are an
// intentional correction mechanism.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.OrderStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			slog.Error("order fetch failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		order.OrderStatus = newStatus
		if err := db.Save(&order).Error; err != nil {
			slog.Error("order status update failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
