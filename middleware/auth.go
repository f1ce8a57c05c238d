package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the bearer token and stores the caller's identity
// (user_id, email, role) on the context for downstream handlers.
func RequireAuth(c *gin.Context) {
	claims, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	c.Set("email", claims["email"])
	c.Set("role", claims["role"])
	c.Next()
}

// RequireAdmin is RequireAuth plus an administrator role check. Order status
// changes, catalog mutations and the cart dashboard all sit behind it.
func RequireAdmin(c *gin.Context) {
	claims, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	role, _ := claims["role"].(string)
	if role != "admin" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin access required"})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	c.Set("email", claims["email"])
	c.Set("role", role)
	c.Next()
}

func parseToken(c *gin.Context) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("Authorization header is missing")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}
	return claims, nil
}
