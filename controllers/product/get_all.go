package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

var sortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"name":       "name",
}

// GetProducts lists the catalog with filtering and sorting for the
// storefront grid.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		newArrivals := c.Query("new_arrivals")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		column, ok := sortColumns[sortBy]
		if !ok {
			column = "created_at"
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}

		// Categories are free text and matched case-insensitively.
		if category != "" {
			query = query.Where("LOWER(category) = ?", strings.ToLower(category))
		}

		if newArrivals == "true" || newArrivals == "1" {
			query = query.Where("is_new_arrival = ?", true)
		}

		if minPriceStr != "" {
			if mp, err := strconv.Atoi(minPriceStr); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.Atoi(maxPriceStr); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", column, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetCategories lists the distinct category labels in use.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Order("category ASC").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
