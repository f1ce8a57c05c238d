package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
	"github.com/burnernzetohost/dariza-fabrics-sub000/utils"
)

const verificationTokenTTL = 48 * time.Hour

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates an account, stores a bcrypt hash and mails a
// verification token. Emails listed in ADMIN_EMAILS come up as admins.
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("register lookup failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("bcrypt failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			return
		}

		user := models.User{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         roleFor(email),
		}
		if err := db.Create(&user).Error; err != nil {
			slog.Error("user create failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			return
		}

		token := models.VerificationToken{
			Token:     uuid.NewString(),
			Email:     email,
			ExpiresAt: time.Now().Add(verificationTokenTTL),
		}
		if err := db.Create(&token).Error; err != nil {
			slog.Error("verification token create failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
			return
		}
		if err := utils.SendVerificationEmail(email, token.Token); err != nil {
			slog.Error("verification email failed", slog.String("email", email), slog.Any("error", err))
		}

		c.JSON(http.StatusCreated, gin.H{"message": "registered, please verify your email", "user": user})
	}
}

// VerifyEmailHandler consumes a verification token.
func VerifyEmailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			var body struct {
				Token string `json:"token"`
			}
			_ = c.ShouldBindJSON(&body)
			tokenStr = body.Token
		}
		if tokenStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
			return
		}

		var token models.VerificationToken
		if err := db.Where("token = ?", tokenStr).First(&token).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification token"})
			return
		}
		if time.Now().After(token.ExpiresAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "verification token expired"})
			return
		}

		if err := db.Model(&models.User{}).Where("email = ?", token.Email).
			Update("email_verified", true).Error; err != nil {
			slog.Error("email verify update failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify email"})
			return
		}
		db.Delete(&token)

		c.JSON(http.StatusOK, gin.H{"message": "email verified"})
	}
}

// LoginHandler checks credentials and issues a 24h JWT carrying the role.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   IssueJWT(user.ID, user.Email, user.Role),
		})
	}
}

// IssueJWT signs a token for a user.
func IssueJWT(userID uint, email, role string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}

func roleFor(email string) string {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
			return models.RoleAdmin
		}
	}
	return models.RoleUser
}
