package court

import "gorm.io/gorm"

type Court struct {
	gorm.Model
	Name        string `gorm:"size:50;not null;unique" json:"name"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Description string `gorm:"size:500" json:"description"`
}

type CourtInput struct {
	Name        string `json:"name" binding:"required,max=50"`
	IsActive    *bool  `json:"is_active"`
	Description string `json:"description,omitempty" binding:"max=500"`
}
