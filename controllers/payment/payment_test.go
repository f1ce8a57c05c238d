package paymentControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeGateway struct {
	lastData map[string]interface{}
	calls    int
	fail     bool
}

func (f *fakeGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	f.calls++
	f.lastData = data
	if f.fail {
		return nil, errors.New("gateway unavailable")
	}
	return map[string]interface{}{"id": "order_test123"}, nil
}

func newPaymentRouter(gw Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Gateway: gw, KeyID: "rzp_test_key", Secret: "secret"}
	r := gin.New()
	r.POST("/api/payment/orders", h.CreateOrderHandler())
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w := postJSON(t, r, "/api/payment/orders", `{"amount":2500,"currency":"INR"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := gw.lastData["amount"]; got != 250000 {
		t.Errorf("gateway amount = %v, want 250000 paise", got)
	}

	var resp createOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.OrderID != "order_test123" {
		t.Errorf("order_id = %q", resp.OrderID)
	}
	if resp.Amount != 250000 {
		t.Errorf("amount = %d, want 250000", resp.Amount)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Errorf("key_id = %q", resp.KeyID)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	for _, body := range []string{`{"amount":0}`, `{"amount":-100}`, `{}`} {
		w := postJSON(t, r, "/api/payment/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
	if gw.calls != 0 {
		t.Errorf("gateway called %d times for invalid amounts", gw.calls)
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w := postJSON(t, r, "/api/payment/orders", `{"amount":999}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gw.lastData["currency"] != "INR" {
		t.Errorf("currency = %v, want INR default", gw.lastData["currency"])
	}
	receipt, _ := gw.lastData["receipt"].(string)
	if !strings.HasPrefix(receipt, "rcpt_") {
		t.Errorf("receipt = %q, want generated rcpt_ prefix", receipt)
	}
}

func TestCreateOrderKeepsCallerReceipt(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w := postJSON(t, r, "/api/payment/orders", `{"amount":100,"receipt":"my-ref-42"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gw.lastData["receipt"] != "my-ref-42" {
		t.Errorf("receipt = %v, want my-ref-42", gw.lastData["receipt"])
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	gw := &fakeGateway{fail: true}
	r := newPaymentRouter(gw)

	w := postJSON(t, r, "/api/payment/orders", `{"amount":100}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "unavailable") {
		t.Errorf("raw upstream error leaked to client: %s", w.Body.String())
	}
}
