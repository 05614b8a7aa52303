package transaction

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("transaction category not found")
	ErrAlreadyDecided      = errors.New("transaction has already been decided")
)

type TransactionRepository interface {
	GetAllCategories() ([]TransactionCategory, error)
	GetCategoryByID(id uint) (*TransactionCategory, error)
	CreateCategory(c *TransactionCategory) error
	UpdateCategory(c *TransactionCategory) error
	DeleteCategory(id uint) error

	GetAllTransactions() ([]TransactionView, error)
	GetTransactionByID(id uint) (*TransactionView, error)
	CreateTransaction(t *Transaction) error
	// DecideTransaction moves a transaction to Approved or Rejected,
	// recording the approver and a decision timestamp. Unless
	// allowRedecide is set, deciding an already-decided transaction
	// fails with ErrAlreadyDecided.
	DecideTransaction(id uint, status string, approverUserID uint, allowRedecide bool) error
	GetSummary() (*Summary, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetAllCategories() ([]TransactionCategory, error) {
	var categories []TransactionCategory
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *transactionRepository) GetCategoryByID(id uint) (*TransactionCategory, error) {
	var c TransactionCategory
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *transactionRepository) CreateCategory(c *TransactionCategory) error {
	return r.db.Create(c).Error
}

func (r *transactionRepository) UpdateCategory(c *TransactionCategory) error {
	return r.db.Save(c).Error
}

func (r *transactionRepository) DeleteCategory(id uint) error {
	result := r.db.Delete(&TransactionCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func transactionViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&Transaction{}).
		Select("transactions.id, transactions.date, transactions.amount, transactions.description, transactions.category_id, transaction_categories.name AS category_name, transaction_categories.type AS category_type, transactions.status, transactions.approved_by_id, transactions.approved_date").
		Joins("JOIN transaction_categories ON transaction_categories.id = transactions.category_id")
}

func (r *transactionRepository) GetAllTransactions() ([]TransactionView, error) {
	var views []TransactionView
	err := transactionViewQuery(r.db).
		Order("transactions.date DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *transactionRepository) GetTransactionByID(id uint) (*TransactionView, error) {
	var view TransactionView
	result := transactionViewQuery(r.db).
		Where("transactions.id = ?", id).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTransactionNotFound
	}
	return &view, nil
}

func (r *transactionRepository) CreateTransaction(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *transactionRepository) DecideTransaction(id uint, status string, approverUserID uint, allowRedecide bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var t Transaction
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		if t.Status != StatusPending && !allowRedecide {
			return ErrAlreadyDecided
		}

		now := time.Now()
		t.Status = status
		t.ApprovedByID = &approverUserID
		t.ApprovedDate = &now
		return tx.Save(&t).Error
	})
}

func (r *transactionRepository) GetSummary() (*Summary, error) {
	type row struct {
		Type  string
		Total float64
	}

	var rows []row
	err := r.db.Model(&Transaction{}).
		Select("transaction_categories.type AS type, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN transaction_categories ON transaction_categories.id = transactions.category_id").
		Group("transaction_categories.type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, r := range rows {
		switch r.Type {
		case TypeIncome:
			summary.TotalIncome = r.Total
		case TypeExpense:
			summary.TotalExpense = r.Total
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}
