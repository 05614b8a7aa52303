package auth

import "time"

type RegisterRequest struct {
	Email       string     `json:"email" binding:"required,email" example:"an@pcm.com"`
	Password    string     `json:"password" binding:"required,min=6,max=72" example:"password123"`
	FullName    string     `json:"full_name" binding:"required" example:"Nguyen Van An"`
	PhoneNumber string     `json:"phone_number,omitempty" example:"0901234567"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"an@pcm.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Roles        []string `json:"roles"`
	MemberID     *uint    `json:"member_id,omitempty"`
}

type UserInfoResponse struct {
	UserID    uint     `json:"user_id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Roles     []string `json:"roles"`
	MemberID  *uint    `json:"member_id,omitempty"`
	RankLevel *float64 `json:"rank_level,omitempty"`
}
