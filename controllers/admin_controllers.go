package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats mengambil statistik untuk dashboard admin
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalUsers   int64 `json:"total_users"`
		TotalBuyers  int64 `json:"total_buyers"`
		TotalSellers int64 `json:"total_sellers"`
		TotalItems   int64 `json:"total_items"`
		TotalOrders  int64 `json:"total_orders"`
		OrderStats   struct {
			Waiting    int64 `json:"waiting"`
			Processing int64 `json:"processing"`
			Done       int64 `json:"done"`
			Cancelled  int64 `json:"cancelled"`
		} `json:"order_stats"`
	}

	ac.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleBuyer).Count(&stats.TotalBuyers)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleSeller).Count(&stats.TotalSellers)
	ac.DB.Model(&models.Item{}).Count(&stats.TotalItems)
	ac.DB.Model(&models.Transaction{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Transaction{}).Where("status = ?", models.StatusWaiting).Count(&stats.OrderStats.Waiting)
	ac.DB.Model(&models.Transaction{}).Where("status = ?", models.StatusProcessing).Count(&stats.OrderStats.Processing)
	ac.DB.Model(&models.Transaction{}).Where("status = ?", models.StatusDone).Count(&stats.OrderStats.Done)
	ac.DB.Model(&models.Transaction{}).Where("status = ?", models.StatusCancelled).Count(&stats.OrderStats.Cancelled)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetUsers -> semua user, opsional filter role
func (ac *AdminController) GetUsers(c *gin.Context) {
	q := ac.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", strings.ToUpper(role))
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat user"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

// UpdateUser -> admin mengubah nama/telepon/role user
func (ac *AdminController) UpdateUser(c *gin.Context) {
	userID := c.Param("user_id")

	var user models.User
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user tidak ditemukan"))
		return
	}

	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != "" {
		user.Name = body.Name
	}
	if body.Phone != "" {
		user.Phone = body.Phone
	}
	if body.Role != "" {
		role := strings.ToUpper(body.Role)
		if role != models.RoleBuyer && role != models.RoleSeller && role != models.RoleAdmin {
			utils.RespondError(c, http.StatusBadRequest, errors.New("role tidak dikenal"))
			return
		}
		user.Role = role
	}

	if err := ac.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.logActivity("UPDATE_USER", fmt.Sprintf("Admin mengubah user: %s (%s)", user.Name, user.Email))

	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}

// DeleteUser
func (ac *AdminController) DeleteUser(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == c.GetString("user_id") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tidak bisa menghapus akun sendiri"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user tidak ditemukan"))
		return
	}

	if err := ac.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.logActivity("DELETE_USER", fmt.Sprintf("Admin menghapus user: %s (%s)", user.Name, user.Email))

	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"user_id": userID})
}

// GetActivityLogs -> jejak aksi admin, terbaru dulu
func (ac *AdminController) GetActivityLogs(c *gin.Context) {
	var logs []models.ActivityLog
	if err := ac.DB.Order("created_at DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat activity log"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Activity logs", logs)
}

func (ac *AdminController) logActivity(action, details string) {
	if err := ac.DB.Create(&models.ActivityLog{Action: action, Details: details}).Error; err != nil {
		utils.ErrorLogger.Printf("Error writing activity log: %v", err)
	}
}
