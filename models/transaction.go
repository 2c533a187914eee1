package models

import (
	"strings"
	"time"
)

// Jenis pembayaran. Input bebas dari buyer dinormalisasi ke salah satu dari
// dua nilai ini sebelum disimpan.
const (
	PaymentCash    = "TUNAI"
	PaymentNonCash = "NON_TUNAI"
)

// NormalizePaymentKind memetakan metode bayar bebas ke nilai enum database:
// string yang berbau cash menjadi TUNAI, selain itu NON_TUNAI (QR).
func NormalizePaymentKind(method string) string {
	lower := strings.ToLower(method)
	if strings.Contains(lower, "cash") || strings.Contains(lower, "tunai") {
		return PaymentCash
	}
	return PaymentNonCash
}

// Transaction adalah satu pesanan hasil checkout (bukan transaksi database).
// Total harus sama dengan jumlah subtotal baris order saat dibuat.
type Transaction struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	SessionID   string       `gorm:"type:varchar(36);not null;index" json:"session_id"`
	Session     OrderSession `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	StoreID     string       `gorm:"type:varchar(36);not null;index" json:"store_id"`
	Store       User         `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PaymentKind string       `gorm:"type:varchar(20);not null" json:"payment_kind"`
	Total       int          `gorm:"not null;default:0" json:"total"`
	Status      OrderStatus  `gorm:"type:varchar(20);not null;default:'MENUNGGU'" json:"status"`
	Lines       []OrderLine  `gorm:"foreignKey:TransactionID" json:"lines,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}
