package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

// GetProductByID returns a single product, resolved by catalogue code first
// and SEO slug second.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
			return
		}

		var product models.Product
		err := db.Where("product_id = ?", id).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Where("seo_slug = ? AND seo_slug <> ''", id).First(&product).Error
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
