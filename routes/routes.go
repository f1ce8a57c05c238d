package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/payment"
	shippingControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/shipping"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pay *paymentControllers.Handler, quoter *shippingControllers.Quoter) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupPaymentRoutes(api, pay)
	SetupShippingRoutes(api, quoter)
	SetupAdminRoutes(api, db)
}
