package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

// VerifySignature authenticates a payment callback: the gateway signs
// "<order_id>|<payment_id>" with HMAC-SHA256 under the merchant secret and
// sends the hex digest. Comparison is constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyHandler is the sole authentication boundary for payment callbacks.
// A good signature proves the callback came from the gateway and was not
// tampered with in the client.
func (h *Handler) VerifyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing parameters: " + err.Error()})
			return
		}

		if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, h.Secret) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature mismatch"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "payment_id": req.RazorpayPaymentID})
	}
}
