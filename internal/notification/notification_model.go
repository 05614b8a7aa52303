package notification

import "gorm.io/gorm"

const (
	TypeInfo    = "Info"
	TypeWarning = "Warning"
	TypeSuccess = "Success"
	TypeError   = "Error"
)

type Notification struct {
	gorm.Model
	MemberID uint   `gorm:"index;not null" json:"member_id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	Type     string `gorm:"type:VARCHAR(10);check:type IN ('Info','Warning','Success','Error');default:'Info'" json:"type"`
	IsRead   bool   `gorm:"default:false" json:"is_read"`
	LinkURL  string `gorm:"size:500" json:"link_url"`
}
