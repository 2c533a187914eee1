package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/controllers"
	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

func setupReportRouter(db *gorm.DB, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(userID, role))

	reportCtrl := controllers.NewReportController(db)
	router.GET("/api/reports", reportCtrl.GetSalesReport)
	return router
}

// seedDoneTransaction menulis transaksi SELESAI lengkap dengan baris ordernya.
func seedDoneTransaction(db *gorm.DB, store models.User, buyer models.User, paymentKind string, lines []models.OrderLine) models.Transaction {
	session := models.OrderSession{
		ID:          uuid.NewString(),
		TableNumber: "M-01",
		BuyerID:     buyer.ID,
		Status:      models.SessionActive,
	}
	db.Create(&session)

	total := 0
	for _, l := range lines {
		total += l.Subtotal
	}

	trx := models.Transaction{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		StoreID:     store.ID,
		PaymentKind: paymentKind,
		Total:       total,
		Status:      models.StatusDone,
	}
	db.Create(&trx)

	for i := range lines {
		lines[i].ID = uuid.NewString()
		lines[i].TransactionID = trx.ID
		db.Create(&lines[i])
	}
	return trx
}

func TestSalesReportSums(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	store, items := seedStoreWithItems(db)
	buyer := seedBuyer(db)

	nasiGoreng := items[0] // 10000

	seedDoneTransaction(db, store, buyer, models.PaymentCash, []models.OrderLine{
		{ItemID: nasiGoreng.ID, Quantity: 1, Subtotal: 10000},
	})
	seedDoneTransaction(db, store, buyer, models.PaymentNonCash, []models.OrderLine{
		{ItemID: nasiGoreng.ID, Quantity: 2, Subtotal: 20000},
	})
	seedDoneTransaction(db, store, buyer, models.PaymentCash, []models.OrderLine{
		{ItemID: items[1].ID, Quantity: 1, Subtotal: 5000},
	})

	// Transaksi MENUNGGU tidak ikut dihitung
	waiting := seedDoneTransaction(db, store, buyer, models.PaymentCash, []models.OrderLine{
		{ItemID: nasiGoreng.ID, Quantity: 9, Subtotal: 90000},
	})
	db.Model(&models.Transaction{}).Where("id = ?", waiting.ID).Update("status", models.StatusWaiting)

	router := setupReportRouter(db, store.ID, models.RoleSeller)
	req, _ := http.NewRequest("GET", "/api/reports?period=today", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, float64(35000), data["total"])
	assert.Equal(t, float64(15000), data["cash"])
	assert.Equal(t, float64(20000), data["non_cash"])
	assert.Equal(t, float64(3), data["order_count"])

	topItems := data["top_items"].([]interface{})
	first := topItems[0].(map[string]interface{})
	assert.Equal(t, "Nasi Goreng", first["name"])
	assert.Equal(t, float64(3), first["quantity"])
	assert.Equal(t, float64(30000), first["revenue"])
}

func TestSalesReportRanksByQuantity(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	store, items := seedStoreWithItems(db)
	buyer := seedBuyer(db)

	// Nasi Goreng: 2 + 3 = 5 porsi, revenue 24000+36000
	seedDoneTransaction(db, store, buyer, models.PaymentCash, []models.OrderLine{
		{ItemID: items[0].ID, Quantity: 2, Subtotal: 24000},
		{ItemID: items[1].ID, Quantity: 1, Subtotal: 4000},
	})
	seedDoneTransaction(db, store, buyer, models.PaymentCash, []models.OrderLine{
		{ItemID: items[0].ID, Quantity: 3, Subtotal: 36000},
	})

	router := setupReportRouter(db, store.ID, models.RoleSeller)
	req, _ := http.NewRequest("GET", "/api/reports?period=week", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	topItems := data["top_items"].([]interface{})
	assert.Len(t, topItems, 2)

	first := topItems[0].(map[string]interface{})
	assert.Equal(t, "Nasi Goreng", first["name"])
	assert.Equal(t, float64(5), first["quantity"])
	assert.Equal(t, float64(60000), first["revenue"])
}

func TestSalesReportRejectsUnknownPeriod(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	store, _ := seedStoreWithItems(db)

	router := setupReportRouter(db, store.ID, models.RoleSeller)
	req, _ := http.NewRequest("GET", "/api/reports?period=tahun", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPeriodRange(t *testing.T) {
	// Jumat 29 Agustus 2026
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	start, end, err := controllers.PeriodRange("today", now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), end)

	// Minggu berjalan mulai Senin 24
	start, end, err = controllers.PeriodRange("week", now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)

	// Hari Minggu masuk minggu yang dimulai Senin sebelumnya
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	start, _, err = controllers.PeriodRange("week", sunday)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)

	start, end, err = controllers.PeriodRange("month", now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = controllers.PeriodRange("tahun", now)
	assert.Error(t, err)
}
