package models

import "time"

// BaseModel is gorm.Model without the soft-delete column. Rows here are
// removed for real so that the ON DELETE CASCADE constraints fire.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
