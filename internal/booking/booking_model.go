package booking

import (
	"time"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/court"
	"github.com/pcmclub/pcm-api/internal/member"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	gorm.Model
	CourtID   uint           `gorm:"not null;index" json:"court_id"`
	Court     *court.Court   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	MemberID  uint           `gorm:"not null;index" json:"member_id"`
	Member    *member.Member `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	StartTime time.Time      `gorm:"not null" json:"start_time"`
	EndTime   time.Time      `gorm:"not null" json:"end_time"`
	Status    string         `gorm:"type:VARCHAR(20);check:status IN ('Pending','Confirmed','Rejected','Cancelled');default:'Pending'" json:"status"`
	Notes     string         `gorm:"size:500" json:"notes"`
}

type BookingInput struct {
	CourtID   uint      `json:"court_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes,omitempty" binding:"max=500"`
}

// BookingView is the list projection with resolved display names.
type BookingView struct {
	ID         uint      `json:"id"`
	CourtID    uint      `json:"court_id"`
	CourtName  string    `json:"court_name"`
	MemberID   uint      `json:"member_id"`
	MemberName string    `json:"member_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
}
