package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bcfoodnet/foodcourt-app/controllers"
	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

// Seed harus idempotent: dipanggil dua kali tidak menggandakan data.
func TestSeedIdempotent(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	seedCtrl := controllers.NewSeedController(db)
	router.GET("/api/seed", seedCtrl.Seed)

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/api/seed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	var userCount, itemCount, sellerCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.User{}).Where("role = ?", models.RoleSeller).Count(&sellerCount)
	db.Model(&models.Item{}).Count(&itemCount)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(3), sellerCount)
	assert.Equal(t, int64(16), itemCount)
}
