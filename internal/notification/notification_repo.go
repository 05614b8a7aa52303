package notification

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	GetByMemberID(memberID uint) ([]Notification, error)
	MarkRead(id, memberID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByMemberID(memberID uint) ([]Notification, error) {
	var items []Notification
	err := r.db.Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *notificationRepository) MarkRead(id, memberID uint) error {
	result := r.db.Model(&Notification{}).
		Where("id = ? AND member_id = ?", id, memberID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
