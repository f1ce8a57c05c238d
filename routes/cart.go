package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/cart"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupCartRoutes registers cart endpoints. The upsert is public (the
// storefront syncs a visitor's cart before any login); the dashboard reads
// are admin-only.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	carts := api.Group("/carts")
	{
		carts.POST("", cartControllers.UpsertCart(db))
		carts.GET("", middleware.RequireAdmin, cartControllers.ListCarts(db))
		carts.GET("/:email", middleware.RequireAdmin, cartControllers.GetCart(db))
	}
}
