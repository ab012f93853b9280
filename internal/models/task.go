package models

type Task struct {
	BaseModel

	Content   string `gorm:"not null"`
	IsDone    bool   `gorm:"not null;default:false"`
	ProjectID uint   `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
