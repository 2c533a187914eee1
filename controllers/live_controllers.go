package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bcfoodnet/foodcourt-app/live"
	"github.com/bcfoodnet/foodcourt-app/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// OrdersWSHandler -> endpoint WebSocket untuk notifikasi pesanan.
// Polling REST tetap jadi jalur utama; ini hanya kanal dorong tambahan.
func OrdersWSHandler(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role, _ := roleInterface.(string)

	if role != models.RoleBuyer && role != models.RoleSeller && role != models.RoleAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	live.RegisterClient(ws, role)

	// Reader loop; hub hanya menulis, client tidak mengirim command
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	live.UnregisterClient(ws)
}
