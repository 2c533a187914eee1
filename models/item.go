package models

import (
	"strings"
	"time"
)

// Item adalah satu menu item milik sebuah toko (seller).
type Item struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	StoreID   string    `gorm:"type:varchar(36);not null;index" json:"store_id"`
	Store     User      `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int       `gorm:"not null" json:"price"`
	Image     string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	Category  string    `gorm:"type:varchar(50)" json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Kategori menu yang dikenal UI.
const (
	CategoryFood  = "Makanan"
	CategoryDrink = "Minuman"
	CategorySnack = "Snack"
)

var (
	drinkKeywords = []string{"es", "jus", "kopi", "teh", "minuman"}
	snackKeywords = []string{"kerupuk", "snack"}
)

// InferCategory menebak kategori dari nama item. Dipakai hanya untuk item
// yang kolom kategorinya kosong; hasilnya tidak pernah disimpan ke database.
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range drinkKeywords {
		if strings.Contains(lower, kw) {
			return CategoryDrink
		}
	}
	for _, kw := range snackKeywords {
		if strings.Contains(lower, kw) {
			return CategorySnack
		}
	}
	return CategoryFood
}

// EffectiveCategory mengembalikan kategori tersimpan, atau hasil inferensi
// jika belum pernah diisi.
func (i Item) EffectiveCategory() string {
	if i.Category != "" {
		return i.Category
	}
	return InferCategory(i.Name)
}
