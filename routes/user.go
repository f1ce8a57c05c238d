package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/user"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupUserRoutes registers the JWT-protected "/user/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
	}
}
