package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/order"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupOrderRoutes registers the checkout and fulfillment endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// Order persistence after a verified payment
		orders.POST("", orderControllers.CreateOrderHandler(db))

		// Customer order history
		orders.GET("/user/:email", orderControllers.GetUserOrdersHandler(db))

		// Back-office
		orders.GET("", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
		orders.GET("/:orderID", middleware.RequireAdmin, orderControllers.GetOrderByIDHandler(db))
		orders.PATCH("/:orderID", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
	}
}
