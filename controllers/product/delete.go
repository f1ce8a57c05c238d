package productcontroller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct hard-deletes a catalog entry (admin). Order snapshots keep
// their copy of the product, so history survives the delete.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c)
		if !ok {
			return
		}

		if err := db.Unscoped().Delete(product).Error; err != nil {
			slog.Error("product delete failed", slog.String("product_id", product.ProductID), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
