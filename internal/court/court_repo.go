package court

import (
	"errors"

	"gorm.io/gorm"
)

var ErrCourtNotFound = errors.New("court not found")

type CourtRepository interface {
	GetAllCourts() ([]Court, error)
	GetCourtByID(id uint) (*Court, error)
	CreateCourt(c *Court) error
	UpdateCourt(c *Court) error
	DeleteCourt(id uint) error
}

type courtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) CourtRepository {
	return &courtRepository{db: db}
}

func (r *courtRepository) GetAllCourts() ([]Court, error) {
	var courts []Court
	if err := r.db.Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *courtRepository) GetCourtByID(id uint) (*Court, error) {
	var c Court
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *courtRepository) CreateCourt(c *Court) error {
	return r.db.Create(c).Error
}

func (r *courtRepository) UpdateCourt(c *Court) error {
	return r.db.Save(c).Error
}

// DeleteCourt removes a court. Courts with bookings are kept by the
// bookings foreign key, which restricts deletion.
func (r *courtRepository) DeleteCourt(id uint) error {
	result := r.db.Delete(&Court{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourtNotFound
	}
	return nil
}
