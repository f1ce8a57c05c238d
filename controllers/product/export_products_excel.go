package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

// ExportProductsToExcel downloads the catalog as a spreadsheet (admin).
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ProductID", "Category", "Name", "Price", "SalePrice",
			"Description", "Images", "Sizes", "IsNewArrival", "Slug", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ProductID)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			if p.SalePrice != nil {
				row.AddCell().SetValue(*p.SalePrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Description)

			var urls []string
			for _, img := range p.Images {
				urls = append(urls, img.URL)
			}
			row.AddCell().SetValue(strings.Join(urls, ","))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(p.IsNewArrival)
			row.AddCell().SetValue(p.SEO.Slug)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
