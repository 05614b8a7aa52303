package member

import (
	"errors"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines all database operations on club members.
type MemberRepository interface {
	GetAllMembers() ([]Member, error)
	GetMemberByID(id uint) (*Member, error)
	GetMemberByUserID(userID uint) (*Member, error)
	UpdateMember(m *Member) error
	GetTopRanking(limit int) ([]TopRankingEntry, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) GetAllMembers() ([]Member, error) {
	var members []Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) GetMemberByID(id uint) (*Member, error) {
	var m Member
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) GetMemberByUserID(userID uint) (*Member, error) {
	var m Member
	if err := r.db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) UpdateMember(m *Member) error {
	return r.db.Save(m).Error
}

func (r *memberRepository) GetTopRanking(limit int) ([]TopRankingEntry, error) {
	var entries []TopRankingEntry
	err := r.db.Model(&Member{}).
		Select("id, full_name, rank_level, total_matches, win_matches").
		Order("rank_level DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
