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

type CreateProductRequest struct {
	ProductID    string                `json:"product_id" binding:"required"`
	Category     string                `json:"category" binding:"required"`
	Name         string                `json:"name" binding:"required"`
	Price        int                   `json:"price" binding:"required,gt=0"`
	SalePrice    *int                  `json:"sale_price"`
	Description  string                `json:"description"`
	Images       []models.ProductImage `json:"images"`
	Sizes        []string              `json:"sizes"`
	IsNewArrival bool                  `json:"is_new_arrival"`
	SEO          models.SEO            `json:"seo"`
}

// CreateProduct adds a catalog entry (admin). Image files live in object
// storage; the catalog only stores their URLs.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, img := range req.Images {
			if strings.TrimSpace(img.URL) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "image url must not be empty"})
				return
			}
		}

		product := models.Product{
			ProductID:    strings.TrimSpace(req.ProductID),
			Category:     strings.TrimSpace(req.Category),
			Name:         req.Name,
			Price:        req.Price,
			SalePrice:    req.SalePrice,
			Description:  req.Description,
			Images:       req.Images,
			Sizes:        req.Sizes,
			IsNewArrival: req.IsNewArrival,
			SEO:          req.SEO,
		}
		if err := product.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.Product
		if err := db.Where("product_id = ?", product.ProductID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("product lookup failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		if err := db.Create(&product).Error; err != nil {
			slog.Error("product create failed", slog.String("product_id", product.ProductID), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
