package challenge

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrChallengeClosed   = errors.New("challenge is not open for joining")
	ErrAlreadyJoined     = errors.New("member already joined this challenge")
	ErrNotTeamBattle     = errors.New("challenge game mode does not support team division")
)

type ChallengeRepository interface {
	GetAllChallenges() ([]ChallengeView, error)
	GetChallengeByID(id uint) (*ChallengeView, error)
	CreateChallenge(c *Challenge) error
	// JoinChallenge enrolls the member as a confirmed participant while
	// the challenge is still open; duplicate joins are rejected.
	JoinChallenge(challengeID, memberID uint) error
	// AutoDivideTeams splits confirmed participants of a TeamBattle
	// challenge into two teams by alternating down the rank order.
	AutoDivideTeams(challengeID uint) error
	GetParticipants(challengeID uint) ([]Participant, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) GetAllChallenges() ([]ChallengeView, error) {
	var views []ChallengeView
	err := r.db.Model(&Challenge{}).
		Select("challenges.id, challenges.title, challenges.type, challenges.game_mode, challenges.status, challenges.target_wins, challenges.score_team_a, challenges.score_team_b, challenges.entry_fee, challenges.prize_pool, challenges.start_date, challenges.end_date, COUNT(participants.id) AS participant_count").
		Joins("LEFT JOIN participants ON participants.challenge_id = challenges.id AND participants.deleted_at IS NULL").
		Group("challenges.id").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *challengeRepository) GetChallengeByID(id uint) (*ChallengeView, error) {
	var view ChallengeView
	result := r.db.Model(&Challenge{}).
		Select("challenges.id, challenges.title, challenges.type, challenges.game_mode, challenges.status, challenges.target_wins, challenges.score_team_a, challenges.score_team_b, challenges.entry_fee, challenges.prize_pool, challenges.start_date, challenges.end_date, COUNT(participants.id) AS participant_count").
		Joins("LEFT JOIN participants ON participants.challenge_id = challenges.id AND participants.deleted_at IS NULL").
		Where("challenges.id = ?", id).
		Group("challenges.id").
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrChallengeNotFound
	}
	return &view, nil
}

func (r *challengeRepository) CreateChallenge(c *Challenge) error {
	return r.db.Create(c).Error
}

func (r *challengeRepository) JoinChallenge(challengeID, memberID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var c Challenge
		if err := tx.First(&c, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}
		if c.Status != StatusOpen {
			return ErrChallengeClosed
		}

		var count int64
		if err := tx.Model(&Participant{}).
			Where("challenge_id = ? AND member_id = ?", challengeID, memberID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyJoined
		}

		p := Participant{
			ChallengeID:    challengeID,
			MemberID:       memberID,
			Team:           TeamNone,
			EntryFeePaid:   true,
			EntryFeeAmount: c.EntryFee,
			JoinedDate:     time.Now(),
			Status:         ParticipantConfirmed,
		}
		return tx.Create(&p).Error
	})
}

func (r *challengeRepository) AutoDivideTeams(challengeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var c Challenge
		if err := tx.First(&c, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}
		if c.GameMode != GameModeTeamBattle {
			return ErrNotTeamBattle
		}

		// Strongest first, then alternate A/B down the order. Re-running
		// re-derives the assignment from the current rank ordering.
		var participants []Participant
		err := tx.
			Joins("JOIN members ON members.id = participants.member_id").
			Where("participants.challenge_id = ?", challengeID).
			Order("members.rank_level DESC").
			Find(&participants).Error
		if err != nil {
			return err
		}

		for i := range participants {
			team := TeamA
			if i%2 == 1 {
				team = TeamB
			}
			if err := tx.Model(&participants[i]).Update("team", team).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *challengeRepository) GetParticipants(challengeID uint) ([]Participant, error) {
	var participants []Participant
	if err := r.db.Where("challenge_id = ?", challengeID).Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}
