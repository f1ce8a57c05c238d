package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	heroController "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/hero"
	orderControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/order"
	productcontroller "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/product"
	userControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/user"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin-role
// JWT check.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		heroAdmin := adminGroup.Group("/hero-images")
		{
			heroAdmin.POST("", heroController.CreateHeroImage(db))
			heroAdmin.PUT("/:id", heroController.UpdateHeroImage(db))
			heroAdmin.DELETE("/:id", heroController.DeleteHeroImage(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
