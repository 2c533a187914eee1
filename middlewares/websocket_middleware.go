package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/bcfoodnet/foodcourt-app/utils"
)

// WebSocketAuthMiddleware membaca token dari query string karena browser
// tidak bisa mengirim header Authorization saat upgrade WebSocket.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
