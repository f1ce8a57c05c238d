package productcontroller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

type UpdateProductRequest struct {
	Category     *string                `json:"category"`
	Name         *string                `json:"name"`
	Price        *int                   `json:"price"`
	SalePrice    *int                   `json:"sale_price"`
	ClearSale    bool                   `json:"clear_sale"`
	Description  *string                `json:"description"`
	Images       *[]models.ProductImage `json:"images"`
	Sizes        *[]string              `json:"sizes"`
	IsNewArrival *bool                  `json:"is_new_arrival"`
	SEO          *models.SEO            `json:"seo"`
}

// UpdateProduct mutates a catalog entry in place (admin). Only supplied
// fields change; orders keep their own snapshots and are unaffected.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c)
		if !ok {
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Category != nil {
			product.Category = strings.TrimSpace(*req.Category)
		}
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.SalePrice != nil {
			product.SalePrice = req.SalePrice
		}
		if req.ClearSale {
			product.SalePrice = nil
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Images != nil {
			product.Images = *req.Images
		}
		if req.Sizes != nil {
			product.Sizes = *req.Sizes
		}
		if req.IsNewArrival != nil {
			product.IsNewArrival = *req.IsNewArrival
		}
		if req.SEO != nil {
			product.SEO = *req.SEO
		}

		if err := product.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(product).Error; err != nil {
			slog.Error("product update failed", slog.String("product_id", product.ProductID), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// findProduct resolves the :id param against the catalogue code, writing the
// error response itself when the product is missing.
func findProduct(db *gorm.DB, c *gin.Context) (*models.Product, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return nil, false
	}

	var product models.Product
	if err := db.Where("product_id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return nil, false
		}
		slog.Error("product fetch failed", slog.String("id", id), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return nil, false
	}
	return &product, true
}
