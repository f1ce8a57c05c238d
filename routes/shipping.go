package routes

import (
	"github.com/gin-gonic/gin"

	shippingControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/shipping"
)

// SetupShippingRoutes registers the checkout shipping-rate endpoint.
func SetupShippingRoutes(api *gin.RouterGroup, quoter *shippingControllers.Quoter) {
	api.POST("/shipping/rate", shippingControllers.RateQuoteHandler(quoter))
}
