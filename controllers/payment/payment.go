package paymentControllers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/burnernzetohost/dariza-fabrics-sub000/config"
)

const idempotencyWindow = 10 * time.Minute

// Gateway is the slice of the payment provider the checkout flow needs.
// Tests substitute a fake; production wraps the Razorpay client.
type Gateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

func (g *razorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return g.client.Order.Create(data, nil)
}

// Handler bundles the gateway dependency for the payment endpoints.
type Handler struct {
	Gateway Gateway
	KeyID   string
	Secret  string
}

// NewHandlerFromEnv wires the real Razorpay client from RAZORPAY_KEY_ID /
// RAZORPAY_KEY_SECRET.
func NewHandlerFromEnv() (*Handler, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || secret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}
	return &Handler{
		Gateway: &razorpayGateway{client: razorpay.NewClient(keyID, secret)},
		KeyID:   keyID,
		Secret:  secret,
	}, nil
}

type createOrderRequest struct {
	Amount         int                    `json:"amount"`   // whole rupees
	Currency       string                 `json:"currency"` // defaults to INR
	Receipt        string                 `json:"receipt"`
	Notes          map[string]interface{} `json:"notes"`
	IdempotencyKey string                 `json:"idempotency_key"`
}

type createOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"` // paise, as submitted to the gateway
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// CreateOrderHandler opens a gateway order for the checkout total. The
// amount arrives in rupees and is converted to paise before submission. A
// client-supplied idempotency key de-duplicates double clicks within a short
// window when Redis is up.
func (h *Handler) CreateOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}

		idemKey := ""
		if config.RedisClient != nil && req.IdempotencyKey != "" {
			idemKey = "pay_idem:" + req.IdempotencyKey
			if cached, err := config.RedisClient.Get(c.Request.Context(), idemKey).Result(); err == nil {
				var resp createOrderResponse
				if json.Unmarshal([]byte(cached), &resp) == nil {
					c.JSON(http.StatusOK, resp)
					return
				}
			}
		}

		currency := req.Currency
		if currency == "" {
			currency = "INR"
		}
		receipt := req.Receipt
		if receipt == "" {
			receipt = fmt.Sprintf("rcpt_%d", time.Now().Unix())
		}

		data := map[string]interface{}{
			"amount":   req.Amount * 100, // gateway wants minor units
			"currency": currency,
			"receipt":  receipt,
		}
		if len(req.Notes) > 0 {
			data["notes"] = req.Notes
		}

		body, err := h.Gateway.CreateOrder(data)
		if err != nil {
			slog.Error("gateway order creation failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment order"})
			return
		}

		orderID, _ := body["id"].(string)
		resp := createOrderResponse{
			OrderID:  orderID,
			Amount:   req.Amount * 100,
			Currency: currency,
			KeyID:    h.KeyID,
		}

		if idemKey != "" {
			if payload, err := json.Marshal(resp); err == nil {
				config.RedisClient.Set(c.Request.Context(), idemKey, payload, idempotencyWindow)
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
