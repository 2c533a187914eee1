package models

import "time"

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

// Table adalah record okupansi meja, di-key oleh nomor meja (bukan sesi).
// Checkout menimpa record ini tanpa deteksi konflik: dua sesi di meja yang
// sama saling menimpa, penulisan terakhir yang menang.
type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);unique;not null" json:"table_number"`
	Status      string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
