package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/auth"
	"github.com/burnernzetohost/dariza-fabrics-sub000/middleware"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimiter(), auth.RegisterHandler(db))
		authGroup.POST("/login", middleware.RateLimiter(), auth.LoginHandler(db))
		authGroup.POST("/verify-email", auth.VerifyEmailHandler(db))
		authGroup.GET("/verify-email", auth.VerifyEmailHandler(db))
	}
}
