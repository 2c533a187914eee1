package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/controllers"
	"github.com/bcfoodnet/foodcourt-app/middlewares"
	"github.com/bcfoodnet/foodcourt-app/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	workDir, _ := os.Getwd()

	// Gambar menu yang di-upload seller
	uploadsPath := filepath.Join(workDir, "public", "uploads")
	r.Static("/uploads", uploadsPath)

	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			// Hanya izinkan akses ke file gambar
			lower := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(lower, ".jpg") &&
				!strings.HasSuffix(lower, ".jpeg") &&
				!strings.HasSuffix(lower, ".png") &&
				!strings.HasSuffix(lower, ".gif") &&
				!strings.HasSuffix(lower, ".webp") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	reportCtrl := controllers.NewReportController(db)
	tableCtrl := controllers.NewTableController(db)
	adminCtrl := controllers.NewAdminController(db)
	receiptCtrl := controllers.NewReceiptController(db)
	seedCtrl := controllers.NewSeedController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	authGroup := api.Group("/auth")
	authGroup.Use(middlewares.NewStrictRateLimiter())
	{
		authGroup.POST("/register", userCtrl.Register)
		authGroup.POST("/login", userCtrl.Login)
	}

	// Katalog bisa dilihat tanpa login (buyer scan QR meja dulu)
	api.GET("/stores", menuCtrl.GetStores)
	api.GET("/stores/:store_id/items", menuCtrl.GetStoreItems)

	// Seed data demo, hanya dev
	if os.Getenv("APP_ENV") != "production" {
		api.GET("/seed", seedCtrl.Seed)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/auth/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)

		// BUYER
		auth.POST("/orders/checkout", middlewares.RequireRoles(models.RoleBuyer), orderCtrl.Checkout)
		auth.GET("/orders/history", middlewares.RequireRoles(models.RoleBuyer), orderCtrl.GetBuyerHistory)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		// Struk PDF, hanya pesanan SELESAI
		receiptGroup := auth.Group("/orders")
		receiptGroup.Use(middlewares.ReceiptLoggerMiddleware())
		{
			receiptGroup.GET("/:order_id/receipt", receiptCtrl.GenerateReceipt)
		}

		// SELLER (admin ikut lewat query store_id)
		seller := auth.Group("/")
		seller.Use(middlewares.RequireRoles(models.RoleSeller, models.RoleAdmin))
		{
			seller.GET("/orders", orderCtrl.GetStoreOrders)
			seller.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
			seller.GET("/reports", reportCtrl.GetSalesReport)
			seller.POST("/items", menuCtrl.CreateItem)
			seller.PATCH("/items/:item_id", menuCtrl.UpdateItem)
			seller.DELETE("/items/:item_id", menuCtrl.DeleteItem)
		}

		auth.PATCH("/store/status", userCtrl.ToggleStoreStatus)

		// ADMIN
		admin := auth.Group("/admin")
		admin.Use(middlewares.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/stats", adminCtrl.GetDashboardStats)
			admin.GET("/users", adminCtrl.GetUsers)
			admin.PATCH("/users/:user_id", adminCtrl.UpdateUser)
			admin.DELETE("/users/:user_id", adminCtrl.DeleteUser)
			admin.GET("/activity-logs", adminCtrl.GetActivityLogs)
			admin.GET("/tables", tableCtrl.GetTables)
			admin.PATCH("/tables/:table_number/release", tableCtrl.ReleaseTable)
		}
	}

	// WebSocket endpoint dengan middleware khusus (token via query)
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/orders", controllers.OrdersWSHandler)
	}

	return r
}
