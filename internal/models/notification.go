package models

import "time"

// Notification rows are only ever written as a side effect of another
// mutation (task created, message posted, member added), never directly
// by a client.
type Notification struct {
	BaseModel

	Content   string    `gorm:"not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	Timestamp time.Time `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	Link      string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
