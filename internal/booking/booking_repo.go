package booking

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotUnavailable = errors.New("time slot is not available")
)

// createBookingRetries bounds how often a booking insert is retried when
// the serializable transaction aborts under concurrent requests.
const createBookingRetries = 3

type BookingRepository interface {
	GetAllBookings() ([]BookingView, error)
	GetBookingByID(id uint) (*Booking, error)
	// CreateBooking runs the availability check and the insert in one
	// serializable transaction so two concurrent overlapping requests
	// cannot both commit.
	CreateBooking(b *Booking) error
	UpdateBookingStatus(id uint, status string) error
	DeleteBooking(id uint) error
	CheckAvailability(courtID uint, start, end time.Time) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetAllBookings() ([]BookingView, error) {
	var views []BookingView
	err := r.db.Model(&Booking{}).
		Select("bookings.id, bookings.court_id, courts.name AS court_name, bookings.member_id, members.full_name AS member_name, bookings.start_time, bookings.end_time, bookings.status, bookings.notes").
		Joins("JOIN courts ON courts.id = bookings.court_id").
		Joins("JOIN members ON members.id = bookings.member_id").
		Order("bookings.start_time DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *bookingRepository) GetBookingByID(id uint) (*Booking, error) {
	var b Booking
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateBooking(b *Booking) error {
	var err error
	for attempt := 0; attempt < createBookingRetries; attempt++ {
		err = r.db.Transaction(func(tx *gorm.DB) error {
			available, err := checkAvailability(tx, b.CourtID, b.StartTime, b.EndTime)
			if err != nil {
				return err
			}
			if !available {
				return ErrSlotUnavailable
			}
			return tx.Create(b).Error
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure reports a Postgres serialization_failure
// (SQLSTATE 40001), raised when serializable transactions conflict. The
// losing transaction is safe to retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

func (r *bookingRepository) UpdateBookingStatus(id uint, status string) error {
	result := r.db.Model(&Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) DeleteBooking(id uint) error {
	result := r.db.Delete(&Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) CheckAvailability(courtID uint, start, end time.Time) (bool, error) {
	return checkAvailability(r.db, courtID, start, end)
}

// checkAvailability applies the half-open interval overlap rule: a
// requested [start,end) conflicts with any non-cancelled booking [s,e)
// on the same court where s < end AND e > start.
func checkAvailability(db *gorm.DB, courtID uint, start, end time.Time) (bool, error) {
	var count int64
	err := db.Model(&Booking{}).
		Where("court_id = ? AND status <> ? AND start_time < ? AND end_time > ?", courtID, StatusCancelled, end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
