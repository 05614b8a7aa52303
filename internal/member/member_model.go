package member

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
)

// Member is the club profile attached to a user account. Rank and the
// match counters are only ever mutated as a side effect of recording a
// ranked match.
type Member struct {
	gorm.Model
	UserID       uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName     string     `gorm:"size:100;not null" json:"full_name"`
	Email        string     `gorm:"size:100" json:"email"`
	PhoneNumber  string     `gorm:"size:20" json:"phone_number"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	JoinDate     time.Time  `json:"join_date"`
	RankLevel    float64    `gorm:"default:3.0" json:"rank_level"`
	Status       string     `gorm:"type:VARCHAR(20);check:status IN ('Active','Inactive','Suspended');default:'Active'" json:"status"`
	TotalMatches int        `gorm:"default:0" json:"total_matches"`
	WinMatches   int        `gorm:"default:0" json:"win_matches"`
}

type UpdateMemberRequest struct {
	FullName    *string    `json:"full_name,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

type TopRankingEntry struct {
	ID           uint    `json:"id"`
	FullName     string  `json:"full_name"`
	RankLevel    float64 `json:"rank_level"`
	TotalMatches int     `json:"total_matches"`
	WinMatches   int     `json:"win_matches"`
}
