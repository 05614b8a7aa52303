package transaction

import (
	"time"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/member"
)

const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type TransactionCategory struct {
	gorm.Model
	Name string `gorm:"size:100;not null" json:"name"`
	Type string `gorm:"type:VARCHAR(10);check:type IN ('Income','Expense');not null" json:"type"`
}

// Transaction is a treasury entry. It is created Pending and moves to
// Approved or Rejected once, recording who decided and when.
type Transaction struct {
	gorm.Model
	Date         time.Time            `gorm:"not null" json:"date"`
	Amount       float64              `gorm:"not null" json:"amount"`
	Description  string               `gorm:"size:500" json:"description"`
	CategoryID   uint                 `gorm:"not null" json:"category_id"`
	Category     *TransactionCategory `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	CreatedBy    uint                 `gorm:"not null" json:"created_by"`
	Creator      *member.Member       `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT" json:"-"`
	Status       string               `gorm:"type:VARCHAR(10);check:status IN ('Pending','Approved','Rejected');default:'Pending'" json:"status"`
	ApprovedByID *uint                `json:"approved_by_id"`
	ApprovedDate *time.Time           `json:"approved_date"`
}

type CategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,oneof=Income Expense"`
}

type TransactionInput struct {
	Date        time.Time `json:"date" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description,omitempty" binding:"max=500"`
	CategoryID  uint      `json:"category_id" binding:"required"`
}

// TransactionView is the list projection with resolved category data.
type TransactionView struct {
	ID           uint       `json:"id"`
	Date         time.Time  `json:"date"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	CategoryID   uint       `json:"category_id"`
	CategoryName string     `json:"category_name"`
	CategoryType string     `json:"category_type"`
	Status       string     `json:"status"`
	ApprovedByID *uint      `json:"approved_by_id"`
	ApprovedDate *time.Time `json:"approved_date"`
}

type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
