package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/payment"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupPaymentRoutes registers the gateway order creation and callback
// verification endpoints.
func SetupPaymentRoutes(api *gin.RouterGroup, pay *paymentControllers.Handler) {
	payment := api.Group("/payment")
	{
		payment.POST("/orders", middleware.RateLimiter(), pay.CreateOrderHandler())
		payment.PUT("/verify", pay.VerifyHandler())
	}
}
