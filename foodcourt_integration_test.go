package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/router"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 0. Seed seller + buyer, login -> token
// 1. Seller menambah item menu
// 2. Buyer checkout (tunai) -> MENUNGGU
// 3. Seller memproses -> DIPROSES -> SELESAI
// 4. Buyer melihat status & riwayat
// 5. Seller menarik laporan penjualan
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)
	gin.SetMode(gin.TestMode)

	sellerToken := loginAs(t, r, "warung@bcfood.com")
	buyerToken := loginAs(t, r, "buyer@bcfood.com")

	itemID := createItemTest(t, r, sellerToken)
	orderID := checkoutTest(t, r, buyerToken, itemID)
	advanceStatusTest(t, r, sellerToken, orderID)
	checkHistoryTest(t, r, buyerToken)
	checkReportTest(t, r, sellerToken)
}

// setupIntegrationDB -> migrasi di SQLite in-memory + seed user
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Table{},
		&models.OrderSession{},
		&models.Transaction{},
		&models.OrderLine{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	db.Create(&models.User{
		ID:       "seller-1",
		Name:     "Warung Tenda Biru",
		Email:    "warung@bcfood.com",
		Password: string(hashed),
		Role:     models.RoleSeller,
		IsOpen:   true,
	})
	db.Create(&models.User{
		ID:       "buyer-1",
		Name:     "Budi Santoso",
		Email:    "buyer@bcfood.com",
		Password: string(hashed),
		Role:     models.RoleBuyer,
	})
	return db
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "123456",
	})
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token := resp["data"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func createItemTest(t *testing.T, r *gin.Engine, token string) string {
	form := url.Values{
		"name":  {"Nasi Goreng Spesial"},
		"price": {"15000"},
	}
	req, _ := http.NewRequest("POST", "/api/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["data"].(map[string]interface{})["id"].(string)
}

func checkoutTest(t *testing.T, r *gin.Engine, token, itemID string) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"store_id":       "seller-1",
		"table_number":   "A-12",
		"payment_method": "tunai",
		"lines": []map[string]interface{}{
			{"item_id": itemID, "quantity": 2, "note": "tanpa bawang"},
		},
	})
	req, _ := http.NewRequest("POST", "/api/orders/checkout", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	trx := resp["data"].(map[string]interface{})["transaction"].(map[string]interface{})
	assert.Equal(t, float64(30000), trx["total"])
	assert.Equal(t, "MENUNGGU", trx["status"])
	return trx["id"].(string)
}

func advanceStatusTest(t *testing.T, r *gin.Engine, token, orderID string) {
	for _, status := range []string{"DIPROSES", "SELESAI"} {
		payload, _ := json.Marshal(map[string]string{"status": status})
		req, _ := http.NewRequest("PATCH", "/api/orders/"+orderID+"/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "gagal pindah ke %s", status)
	}
}

func checkHistoryTest(t *testing.T, r *gin.Engine, token string) {
	req, _ := http.NewRequest("GET", "/api/orders/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	history := resp["data"].([]interface{})
	assert.Len(t, history, 1)
	entry := history[0].(map[string]interface{})
	assert.Equal(t, "Warung Tenda Biru", entry["store_name"])
	trx := entry["transaction"].(map[string]interface{})
	assert.Equal(t, "SELESAI", trx["status"])
}

func checkReportTest(t *testing.T, r *gin.Engine, token string) {
	req, _ := http.NewRequest("GET", "/api/reports?period=today", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(30000), data["total"])
	assert.Equal(t, float64(30000), data["cash"])
	assert.Equal(t, float64(0), data["non_cash"])

	topItems := data["top_items"].([]interface{})
	assert.Len(t, topItems, 1)
	first := topItems[0].(map[string]interface{})
	assert.Equal(t, "Nasi Goreng Spesial", first["name"])
	assert.Equal(t, float64(2), first["quantity"])
}
