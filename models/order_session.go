package models

import "time"

const (
	SessionActive = "active"
	SessionClosed = "closed"
)

// OrderSession mengelompokkan aktivitas checkout satu kunjungan meja.
// Berbeda dengan sesi autentikasi; satu sesi menaungi satu transaksi.
type OrderSession struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);not null" json:"table_number"`
	BuyerID     string    `gorm:"type:varchar(36);not null;index" json:"buyer_id"`
	Buyer       User      `gorm:"foreignKey:BuyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
