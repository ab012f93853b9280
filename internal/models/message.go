package models

import "time"

type Message struct {
	BaseModel

	Content   string    `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	ProjectID uint      `gorm:"not null;index"`
	ParentID  *uint     `gorm:"index"` // nil for top-level messages

	// Relationships
	Author  User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Project Project   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Replies []Message `gorm:"foreignKey:ParentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
