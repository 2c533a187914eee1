package models

import "time"

// ActivityLog dicatat oleh aksi admin (hapus user, edit item, dsb).
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"type:varchar(50);not null" json:"action"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
