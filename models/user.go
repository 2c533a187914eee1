package models

import "time"

// User roles. Sellers double as stores: a PENJUAL row is the store record,
// so Item.StoreID references users.id.
const (
	RoleBuyer  = "PEMBELI"
	RoleSeller = "PENJUAL"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	StoreKind string    `gorm:"type:varchar(50)" json:"store_kind,omitempty"`
	IsOpen    bool      `gorm:"default:true" json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
