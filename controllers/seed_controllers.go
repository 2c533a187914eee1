package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bcfoodnet/foodcourt-app/models"
	"github.com/bcfoodnet/foodcourt-app/utils"
)

type SeedController struct {
	DB *gorm.DB
}

func NewSeedController(db *gorm.DB) *SeedController {
	return &SeedController{DB: db}
}

type seedUser struct {
	Email     string
	Name      string
	Phone     string
	Role      string
	StoreKind string
}

type seedItem struct {
	Name  string
	Price int
}

var seedUsers = []seedUser{
	{Email: "admin@bcfood.com", Name: "Administrator", Phone: "081234567890", Role: models.RoleAdmin},
	{Email: "bungojayacafe@bcfood.com", Name: "Bungo Jaya Cafe", Phone: "081234567891", Role: models.RoleSeller, StoreKind: "Cafe"},
	{Email: "amperakaramuntiang@bcfood.com", Name: "Ampera Karamuntiang", Phone: "081234567893", Role: models.RoleSeller, StoreKind: "Ampera"},
	{Email: "khanzacafe@bcfood.com", Name: "Khanza Cafe", Phone: "081234567894", Role: models.RoleSeller, StoreKind: "Cafe"},
	{Email: "buyer@bcfood.com", Name: "Budi Santoso", Phone: "081234567892", Role: models.RoleBuyer},
}

var seedItems = map[string][]seedItem{
	"bungojayacafe@bcfood.com": {
		{"Chicken Katsu", 13000},
		{"Chicken Vietnam", 13000},
		{"Pecel Ayam", 13000},
		{"Nasi Goreng", 10000},
		{"Mie Rebus", 10000},
		{"Mie Goreng", 10000},
	},
	"khanzacafe@bcfood.com": {
		{"Cappucino Cincau", 7000},
		{"Teh Es", 4000},
		{"Kopi Susu", 6000},
		{"Jus Alpukat", 8000},
		{"Jus Mangga", 11000},
	},
	"amperakaramuntiang@bcfood.com": {
		{"Nasi Ampera", 12000},
		{"Ayam Geprek", 13000},
		{"Nasi Soto", 10000},
		{"Nasi Sup Ayam", 12000},
		{"Mi Goreng", 10000},
	},
}

// Seed mengisi data demo: satu admin, tiga toko beserta menunya, satu buyer.
// Upsert by email (user) dan nama+toko (item), jadi aman dipanggil berulang.
// Hanya untuk lingkungan dev.
func (sc *SeedController) Seed(c *gin.Context) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		var user models.User
		err := sc.DB.Where("email = ?", su.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				ID:        uuid.NewString(),
				Name:      su.Name,
				Email:     su.Email,
				Password:  string(hashed),
				Phone:     su.Phone,
				Role:      su.Role,
				StoreKind: su.StoreKind,
			}
			if err := sc.DB.Create(&user).Error; err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		} else if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		} else {
			user.Name = su.Name
			user.Phone = su.Phone
			user.Role = su.Role
			user.StoreKind = su.StoreKind
			user.Password = string(hashed)
			if err := sc.DB.Save(&user).Error; err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
		users = append(users, user)

		for _, si := range seedItems[su.Email] {
			var item models.Item
			err := sc.DB.Where("store_id = ? AND name = ?", user.ID, si.Name).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.Item{
					ID:      uuid.NewString(),
					StoreID: user.ID,
					Name:    si.Name,
					Price:   si.Price,
				}
				if err := sc.DB.Create(&item).Error; err != nil {
					utils.RespondError(c, http.StatusInternalServerError, err)
					return
				}
			} else if err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			} else {
				item.Price = si.Price
				if err := sc.DB.Save(&item).Error; err != nil {
					utils.RespondError(c, http.StatusInternalServerError, err)
					return
				}
			}
		}
	}

	var allItems []models.Item
	sc.DB.Find(&allItems)

	utils.InfoLogger.Printf("Database seeded: %d users, %d items", len(users), len(allItems))
	utils.RespondJSON(c, http.StatusOK, "Seeding successful (Users & Menu Items)", gin.H{
		"users": users,
		"items": allItems,
	})
}
