package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Sebelum request
		utils.InfoLogger.Printf("Generating receipt for order ID: %s", c.Param("order_id"))

		c.Next()

		// Setelah request
		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Receipt generated successfully for order ID: %s", c.Param("order_id"))
		} else {
			utils.ErrorLogger.Printf("Failed to generate receipt for order ID: %s", c.Param("order_id"))
		}
	}
}
