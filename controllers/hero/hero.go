package heroController

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

type heroImageRequest struct {
	URL          string `json:"url" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// CreateHeroImage adds a slide to the storefront carousel (admin). The image
// itself lives in object storage; only the URL is recorded.
func CreateHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req heroImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hero := models.HeroImage{URL: req.URL, DisplayOrder: req.DisplayOrder}
		if err := db.Create(&hero).Error; err != nil {
			slog.Error("hero image create failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save hero image"})
			return
		}
		c.JSON(http.StatusCreated, hero)
	}
}

// UpdateHeroImage changes a slide's URL or position (admin).
func UpdateHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var hero models.HeroImage
		if err := db.First(&hero, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "hero image not found"})
				return
			}
			slog.Error("hero image fetch failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hero image"})
			return
		}

		var req heroImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hero.URL = req.URL
		hero.DisplayOrder = req.DisplayOrder
		if err := db.Save(&hero).Error; err != nil {
			slog.Error("hero image update failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update hero image"})
			return
		}
		c.JSON(http.StatusOK, hero)
	}
}

// DeleteHeroImage removes a slide (admin).
func DeleteHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var hero models.HeroImage
		if err := db.First(&hero, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "hero image not found"})
				return
			}
			slog.Error("hero image fetch failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hero image"})
			return
		}

		if err := db.Delete(&hero).Error; err != nil {
			slog.Error("hero image delete failed", slog.String("id", id), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete hero image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hero image deleted"})
	}
}

// GetHeroImages lists slides in display order for the landing page.
func GetHeroImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var heroes []models.HeroImage
		if err := db.Order("display_order ASC").Find(&heroes).Error; err != nil {
			slog.Error("hero image list failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hero images"})
			return
		}
		c.JSON(http.StatusOK, heroes)
	}
}
