package news

import "gorm.io/gorm"

type News struct {
	gorm.Model
	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	IsPinned bool   `gorm:"default:false" json:"is_pinned"`
}

type NewsInput struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	IsPinned bool   `json:"is_pinned"`
}
