package shippingControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	perItemWeightKg = 0.5
	// The carrier does not return a token TTL; assume 10 days and refresh
	// inside a trailing safety window.
	tokenValidity     = 10 * 24 * time.Hour
	tokenSafetyWindow = 1 * time.Hour
)

var (
	ErrInvalidPincode = errors.New("delivery_pincode must be exactly 6 digits")
	ErrNoCourier      = errors.New("no courier available for this pincode")
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Quote is the shipping option returned to the checkout page.
type Quote struct {
	CourierName           string  `json:"courier_name"`
	Rate                  float64 `json:"rate"`
	ETD                   string  `json:"etd"`
	EstimatedDeliveryDays string  `json:"estimated_delivery_days"`
	WeightKg              float64 `json:"weight_kg"`
	// Fallback marks that the preferred courier was unavailable and the
	// cheapest option was returned instead.
	Fallback bool `json:"fallback"`
}

// tokenCache holds the carrier bearer token obtained from a prior login.
// The token/expiry pair is assigned atomically under the lock; a race
// between two refreshing requests is harmless, last write wins.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (tc *tokenCache) get() (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.token == "" || time.Now().After(tc.expiresAt.Add(-tokenSafetyWindow)) {
		return "", false
	}
	return tc.token, true
}

func (tc *tokenCache) set(token string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = token
	tc.expiresAt = time.Now().Add(tokenValidity)
}

// Quoter asks the carrier API for serviceability and rates. The credential
// cache lives on the instance, not in package state, so tests can own one.
type Quoter struct {
	BaseURL            string
	OriginPincode      string
	PreferredCourierID int
	HTTP               *http.Client

	cache tokenCache
}

// NewQuoterFromEnv builds the production quoter from SHIPROCKET_* settings.
func NewQuoterFromEnv() *Quoter {
	base := os.Getenv("SHIPROCKET_BASE_URL")
	if base == "" {
		base = "https://apiv2.shiprocket.in/v1/external"
	}
	origin := os.Getenv("SHIPROCKET_PICKUP_PINCODE")
	if origin == "" {
		origin = "395003"
	}
	preferred := 0
	fmt.Sscanf(os.Getenv("SHIPROCKET_PREFERRED_COURIER_ID"), "%d", &preferred)

	return &Quoter{
		BaseURL:            base,
		OriginPincode:      origin,
		PreferredCourierID: preferred,
		HTTP:               &http.Client{Timeout: 15 * time.Second},
	}
}

// token resolves the carrier credential: a statically configured token wins,
// then the cached one, then a fresh login whose result is cached.
func (q *Quoter) token(ctx context.Context) (string, error) {
	if static := os.Getenv("SHIPROCKET_TOKEN"); static != "" {
		return static, nil
	}
	if tok, ok := q.cache.get(); ok {
		return tok, nil
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    os.Getenv("SHIPROCKET_EMAIL"),
		"password": os.Getenv("SHIPROCKET_PASSWORD"),
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.BaseURL+"/auth/login", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("carrier auth failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("carrier auth error (%d): %s", resp.StatusCode, string(body))
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &authResp); err != nil || authResp.Token == "" {
		return "", fmt.Errorf("carrier auth returned no token")
	}

	q.cache.set(authResp.Token)
	return authResp.Token, nil
}

type courierOption struct {
	CourierCompanyID      int         `json:"courier_company_id"`
	CourierName           string      `json:"courier_name"`
	Rate                  float64     `json:"rate"`
	ETD                   string      `json:"etd"`
	EstimatedDeliveryDays json.Number `json:"estimated_delivery_days"`
}

// Quote returns the preferred courier's rate for a destination, or the
// cheapest available option marked as a fallback.
func (q *Quoter) Quote(ctx context.Context, deliveryPincode string, quantity int) (*Quote, error) {
	if !pincodePattern.MatchString(deliveryPincode) {
		return nil, ErrInvalidPincode
	}
	if quantity < 1 {
		quantity = 1
	}
	weight := perItemWeightKg * float64(quantity)

	token, err := q.token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("pickup_postcode", q.OriginPincode)
	params.Set("delivery_postcode", deliveryPincode)
	params.Set("weight", fmt.Sprintf("%.2f", weight))
	params.Set("cod", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		q.BaseURL+"/courier/serviceability/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := q.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("carrier serviceability failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier serviceability error (%d): %s", resp.StatusCode, string(body))
	}

	var svc struct {
		Data struct {
			AvailableCourierCompanies []courierOption `json:"available_courier_companies"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &svc); err != nil {
		return nil, fmt.Errorf("failed to parse carrier response: %w", err)
	}

	options := svc.Data.AvailableCourierCompanies
	if len(options) == 0 {
		return nil, ErrNoCourier
	}

	chosen := options[0]
	fallback := true
	if q.PreferredCourierID != 0 {
		for _, opt := range options {
			if opt.CourierCompanyID == q.PreferredCourierID {
				chosen = opt
				fallback = false
				break
			}
		}
	}
	if fallback {
		for _, opt := range options {
			if opt.Rate < chosen.Rate {
				chosen = opt
			}
		}
	}

	return &Quote{
		CourierName:           chosen.CourierName,
		Rate:                  chosen.Rate,
		ETD:                   chosen.ETD,
		EstimatedDeliveryDays: chosen.EstimatedDeliveryDays.String(),
		WeightKg:              weight,
		Fallback:              fallback,
	}, nil
}

type rateQuoteRequest struct {
	DeliveryPincode string `json:"delivery_pincode" binding:"required"`
	Quantity        int    `json:"quantity"`
}

// RateQuoteHandler quotes shipping for the checkout page.
func RateQuoteHandler(q *Quoter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rateQuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		quote, err := q.Quote(c.Request.Context(), req.DeliveryPincode, req.Quantity)
		switch {
		case errors.Is(err, ErrInvalidPincode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoCourier):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			slog.Error("shipping quote failed", slog.String("pincode", req.DeliveryPincode), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shipping rate"})
		default:
			c.JSON(http.StatusOK, quote)
		}
	}
}
