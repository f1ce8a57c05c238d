package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	heroController "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/hero"
	productcontroller "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/product"
)

// SetupProductRoutes registers the public storefront catalog endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	api.GET("/categories", productcontroller.GetCategories(db))
	api.GET("/hero-images", heroController.GetHeroImages(db))
}
