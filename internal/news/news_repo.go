package news

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news not found")

type NewsRepository interface {
	GetAllNews(pinned *bool) ([]News, error)
	GetNewsByID(id uint) (*News, error)
	CreateNews(n *News) error
	UpdateNews(n *News) error
	DeleteNews(id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// GetAllNews lists bulletin posts, pinned first, newest first.
func (r *newsRepository) GetAllNews(pinned *bool) ([]News, error) {
	var items []News
	query := r.db.Order("is_pinned DESC, created_at DESC")
	if pinned != nil {
		query = query.Where("is_pinned = ?", *pinned)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) GetNewsByID(id uint) (*News, error) {
	var n News
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) CreateNews(n *News) error {
	return r.db.Create(n).Error
}

func (r *newsRepository) UpdateNews(n *News) error {
	return r.db.Save(n).Error
}

func (r *newsRepository) DeleteNews(id uint) error {
	result := r.db.Delete(&News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}
