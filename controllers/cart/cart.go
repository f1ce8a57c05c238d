package cartControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

type upsertCartRequest struct {
	UserEmail string            `json:"user_email" binding:"required,email"`
	UserName  string            `json:"user_name"`
	Items     []models.CartItem `json:"items"`
}

// UpsertCart replaces the whole cart row for an email, creating it if
// absent. Last write wins; concurrent tabs stomp each other and that is
// accepted.
func UpsertCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_email is required: " + err.Error()})
			return
		}

		cart := models.UserCart{
			Email: strings.ToLower(strings.TrimSpace(req.UserEmail)),
			Name:  req.UserName,
			Items: req.Items,
		}
		if cart.Items == nil {
			cart.Items = []models.CartItem{}
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "items", "updated_at"}),
		}).Create(&cart).Error; err != nil {
			slog.Error("cart upsert failed", slog.String("email", cart.Email), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ListCarts returns every cart with its derived status for the admin
// dashboard. Status is computed against orders at read time, never stored.
func ListCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.UserCart
		if err := db.Order("updated_at DESC").Find(&carts).Error; err != nil {
			slog.Error("cart list failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list carts"})
			return
		}

		buyers, err := emailsWithOrders(db, carts)
		if err != nil {
			slog.Error("cart status join failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list carts"})
			return
		}

		for i := range carts {
			carts[i].Status = carts[i].DeriveStatus(buyers[carts[i].Email])
		}
		c.JSON(http.StatusOK, carts)
	}
}

// GetCart returns one cart by email with its derived status.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.ToLower(c.Param("email"))

		var cart models.UserCart
		if err := db.Where("email = ?", email).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
				return
			}
			slog.Error("cart fetch failed", slog.String("email", email), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
			return
		}

		buyers, err := emailsWithOrders(db, []models.UserCart{cart})
		if err != nil {
			slog.Error("cart status join failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
			return
		}

		cart.Status = cart.DeriveStatus(buyers[cart.Email])
		c.JSON(http.StatusOK, cart)
	}
}

// emailsWithOrders reports which of the given carts' emails have at least
// one order.
func emailsWithOrders(db *gorm.DB, carts []models.UserCart) (map[string]bool, error) {
	if len(carts) == 0 {
		return map[string]bool{}, nil
	}

	emails := make([]string, 0, len(carts))
	for _, cart := range carts {
		emails = append(emails, cart.Email)
	}

	var buyerEmails []string
	if err := db.Model(&models.Order{}).
		Distinct("email").
		Where("email IN ?", emails).
		Pluck("email", &buyerEmails).Error; err != nil {
		return nil, err
	}

	buyers := make(map[string]bool, len(buyerEmails))
	for _, email := range buyerEmails {
		buyers[email] = true
	}
	return buyers, nil
}
