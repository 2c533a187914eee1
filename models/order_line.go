package models

import "time"

// OrderLine adalah satu baris item di dalam Transaction. Subtotal dibekukan
// saat order dibuat (quantity x harga item saat itu); edit harga belakangan
// tidak menghitung ulang baris lama.
type OrderLine struct {
	ID            string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	TransactionID string      `gorm:"type:varchar(36);not null;index" json:"transaction_id"`
	Transaction   Transaction `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID        string      `gorm:"type:varchar(36);not null" json:"item_id"`
	Item          Item        `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item"`
	Quantity      int         `gorm:"not null" json:"quantity"`
	Subtotal      int         `gorm:"not null" json:"subtotal"`
	Note          string      `gorm:"type:text" json:"note"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
}
