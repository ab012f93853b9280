package models

type User struct {
	BaseModel

	Name     string
	Email    string  `gorm:"uniqueIndex;not null"`
	GoogleID *string `gorm:"uniqueIndex"`

	// Relationships
	Messages           []Message           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectMemberships []ProjectMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notifications      []Notification      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
