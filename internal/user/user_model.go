package user

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `json:"-"`
	FullName  string     `gorm:"not null" json:"full_name"`
	UserRoles []UserRole `json:"-"`
}

type Role struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type UserRole struct {
	gorm.Model
	UserID uint `gorm:"index:idx_user_role,unique"`
	RoleID uint `gorm:"index:idx_user_role,unique"`
	Role   Role
}

type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}
