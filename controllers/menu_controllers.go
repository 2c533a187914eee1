package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// itemView adalah Item plus kategori hasil inferensi untuk item yang kolom
// kategorinya kosong. Inferensi hanya hidup di response, tidak disimpan.
type itemView struct {
	models.Item
	Category string `json:"category"`
}

// GetStores -> daftar toko (seller) untuk halaman utama buyer
func (mc *MenuController) GetStores(c *gin.Context) {
	var stores []models.User
	q := mc.DB.Where("role = ?", models.RoleSeller)
	if c.Query("open") == "true" {
		q = q.Where("is_open = ?", true)
	}
	if err := q.Find(&stores).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat daftar toko"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of stores", stores)
}

// GetStoreItems -> semua item milik satu toko, dengan kategori terinferensi
func (mc *MenuController) GetStoreItems(c *gin.Context) {
	storeID := c.Param("store_id")

	var items []models.Item
	if err := mc.DB.Where("store_id = ?", storeID).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("gagal memuat menu"))
		return
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{Item: item, Category: item.EffectiveCategory()})
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", views)
}

// CreateItem -> seller menambah item ke tokonya; admin boleh menambah ke
// toko manapun lewat field store_id. Gambar opsional (multipart).
func (mc *MenuController) CreateItem(c *gin.Context) {
	storeID, ok := mc.resolveStoreID(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("nama item harus diisi"))
		return
	}

	price, err := strconv.Atoi(c.PostForm("price"))
	if err != nil || price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("harga tidak valid"))
		return
	}

	imageURL, err := mc.saveUploadedImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item := models.Item{
		ID:       uuid.NewString(),
		StoreID:  storeID,
		Name:     name,
		Price:    price,
		Image:    imageURL,
		Category: c.PostForm("category"),
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.logAdminActivity(c, "CREATE_ITEM", fmt.Sprintf("Admin menambah item: %s", item.Name))

	utils.InfoLogger.Printf("Item created: %s (store=%s)", item.Name, item.StoreID)
	utils.RespondJSON(c, http.StatusCreated, "Item created", item)
}

// UpdateItem -> edit nama/harga/kategori/gambar
func (mc *MenuController) UpdateItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.Item
	if err := mc.DB.First(&item, "id = ?", itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item tidak ditemukan"))
		return
	}

	if !mc.canManage(c, item.StoreID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if name := c.PostForm("name"); name != "" {
		item.Name = name
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.Atoi(priceStr)
		if err != nil || price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("harga tidak valid"))
			return
		}
		item.Price = price
	}
	if category := c.PostForm("category"); category != "" {
		item.Category = category
	}

	imageURL, err := mc.saveUploadedImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if imageURL != "" {
		item.Image = imageURL
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.logAdminActivity(c, "UPDATE_ITEM", fmt.Sprintf("Admin mengubah item: %s", item.Name))

	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem
func (mc *MenuController) DeleteItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.Item
	if err := mc.DB.First(&item, "id = ?", itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item tidak ditemukan"))
		return
	}

	if !mc.canManage(c, item.StoreID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.logAdminActivity(c, "DELETE_ITEM", fmt.Sprintf("Admin menghapus item: %s", item.Name))

	utils.RespondJSON(c, http.StatusOK, "Item deleted", gin.H{"item_id": itemID})
}

// resolveStoreID menentukan toko target: seller selalu tokonya sendiri,
// admin wajib mengirim store_id.
func (mc *MenuController) resolveStoreID(c *gin.Context) (string, bool) {
	role := c.GetString("role")
	switch role {
	case models.RoleSeller:
		return c.GetString("user_id"), true
	case models.RoleAdmin:
		storeID := c.PostForm("store_id")
		if storeID == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("store_id harus diisi"))
			return "", false
		}
		var store models.User
		if err := mc.DB.Where("id = ? AND role = ?", storeID, models.RoleSeller).First(&store).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("toko tidak ditemukan"))
			return "", false
		}
		return storeID, true
	default:
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return "", false
	}
}

func (mc *MenuController) canManage(c *gin.Context, storeID string) bool {
	role := c.GetString("role")
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleSeller && c.GetString("user_id") == storeID
}

// logAdminActivity menulis activity log hanya untuk aksi admin.
func (mc *MenuController) logAdminActivity(c *gin.Context, action, details string) {
	if c.GetString("role") != models.RoleAdmin {
		return
	}
	if err := mc.DB.Create(&models.ActivityLog{Action: action, Details: details}).Error; err != nil {
		utils.ErrorLogger.Printf("Error writing activity log: %v", err)
	}
}

// saveUploadedImage menyimpan file "image" (jika ada) ke direktori upload
// dan mengembalikan URL publiknya. Tanpa file -> string kosong tanpa error.
func (mc *MenuController) saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	uploadDir := "public/uploads/menu_images"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", errors.New("error creating upload directory")
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), file.Filename)
	path := fmt.Sprintf("%s/%s", uploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", errors.New("error saving image")
	}

	return fmt.Sprintf("/uploads/menu_images/%s", filename), nil
}
