package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetTables -> daftar okupansi meja
func (tc *TableController) GetTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("table_number ASC").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat meja"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// ReleaseTable -> admin mengosongkan meja secara manual. Checkout yang
// menandai occupied; pembersihan kembali ke available lewat sini.
func (tc *TableController) ReleaseTable(c *gin.Context) {
	tableNumber := c.Param("table_number")

	var table models.Table
	if err := tc.DB.Where("table_number = ?", tableNumber).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meja tidak ditemukan"))
		return
	}

	if err := tc.DB.Model(&table).Update("status", models.TableAvailable).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %s released", tableNumber)
	utils.RespondJSON(c, http.StatusOK, "Meja dikosongkan", table)
}
