package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "merchant-secret"
	orderID := "order_MkWkRrLCiqa3Fn"
	paymentID := "pay_MkWlSx0pWcqBLG"
	good := signPayload(secret, orderID, paymentID)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
		want      bool
	}{
		{"valid", orderID, paymentID, good, secret, true},
		{"mutated signature", orderID, paymentID, flipLastChar(good), secret, false},
		{"mutated order id", orderID + "x", paymentID, good, secret, false},
		{"mutated payment id", orderID, paymentID + "x", good, secret, false},
		{"wrong secret", orderID, paymentID, good, "other-secret", false},
		{"empty signature", orderID, paymentID, "", secret, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifySignature(tt.orderID, tt.paymentID, tt.signature, tt.secret)
			if got != tt.want {
				t.Errorf("VerifySignature = %v, want %v", got, tt.want)
			}
		})
	}
}

func flipLastChar(s string) string {
	last := s[len(s)-1]
	repl := "0"
	if last == '0' {
		repl = "1"
	}
	return s[:len(s)-1] + repl
}

func TestVerifyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const secret = "merchant-secret"
	h := &Handler{KeyID: "rzp_test_key", Secret: secret}

	r := gin.New()
	r.PUT("/api/payment/verify", h.VerifyHandler())

	good := signPayload(secret, "order_1", "pay_1")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid callback", `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"` + good + `"}`, http.StatusOK},
		{"bad signature", `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"deadbeef"}`, http.StatusBadRequest},
		{"missing signature", `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1"}`, http.StatusBadRequest},
		{"missing order id", `{"razorpay_payment_id":"pay_1","razorpay_signature":"x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/payment/verify", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), `"payment_id":"pay_1"`) {
				t.Errorf("expected payment_id in response, got %s", w.Body.String())
			}
		})
	}
}
