package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

// ExportOrdersToExcel downloads the full order book for back-office
// reporting.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Email", "Phone", "BillingAddress", "ShippingAddress",
			"Items", "TotalAmount", "PaymentStatus", "OrderStatus",
			"SpecialNotes", "RazorpayPaymentID", "RazorpayOrderID", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Name)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.BillingAddress)
			row.AddCell().SetValue(o.ShippingAddress)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.Name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.PaymentStatus)
			row.AddCell().SetValue(string(o.OrderStatus))
			row.AddCell().SetValue(o.SpecialNotes)
			row.AddCell().SetValue(o.RazorpayPaymentID)
			row.AddCell().SetValue(o.RazorpayOrderID)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
