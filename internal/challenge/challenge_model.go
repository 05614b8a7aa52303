package challenge

import (
	"time"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/member"
)

const (
	TypeDuel     = "Duel"
	TypeMiniGame = "MiniGame"

	GameModeNone       = "None"
	GameModeTeamBattle = "TeamBattle"
	GameModeRoundRobin = "RoundRobin"

	StatusOpen     = "Open"
	StatusOngoing  = "Ongoing"
	StatusFinished = "Finished"

	TeamNone = "None"
	TeamA    = "TeamA"
	TeamB    = "TeamB"

	ParticipantPending   = "Pending"
	ParticipantConfirmed = "Confirmed"
	ParticipantWithdrawn = "Withdrawn"
)

// Challenge is a club competition: a single duel or a multi-match
// mini-game. Under the TeamBattle game mode two persistent teams
// accumulate match wins toward TargetWins.
type Challenge struct {
	gorm.Model
	Title      string         `gorm:"size:200;not null" json:"title"`
	Type       string         `gorm:"type:VARCHAR(20);check:type IN ('Duel','MiniGame');not null" json:"type"`
	GameMode   string         `gorm:"type:VARCHAR(20);check:game_mode IN ('None','TeamBattle','RoundRobin');default:'None'" json:"game_mode"`
	Status     string         `gorm:"type:VARCHAR(20);check:status IN ('Open','Ongoing','Finished');default:'Open'" json:"status"`
	TargetWins *int           `json:"target_wins"`
	ScoreTeamA int            `gorm:"default:0" json:"score_team_a"`
	ScoreTeamB int            `gorm:"default:0" json:"score_team_b"`
	EntryFee   float64        `gorm:"default:0" json:"entry_fee"`
	PrizePool  float64        `gorm:"default:0" json:"prize_pool"`
	CreatedBy  uint           `gorm:"not null" json:"created_by"`
	Creator    *member.Member `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT" json:"-"`
	StartDate  *time.Time     `json:"start_date"`
	EndDate    *time.Time     `json:"end_date"`

	Participants []Participant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Participant is a member's enrollment in a challenge. Team is only
// meaningful when the parent challenge's game mode is TeamBattle.
type Participant struct {
	gorm.Model
	ChallengeID    uint           `gorm:"not null;index:idx_challenge_member,unique" json:"challenge_id"`
	MemberID       uint           `gorm:"not null;index:idx_challenge_member,unique" json:"member_id"`
	Member         *member.Member `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Team           string         `gorm:"type:VARCHAR(10);check:team IN ('None','TeamA','TeamB');default:'None'" json:"team"`
	EntryFeePaid   bool           `gorm:"default:false" json:"entry_fee_paid"`
	EntryFeeAmount float64        `gorm:"default:0" json:"entry_fee_amount"`
	JoinedDate     time.Time      `json:"joined_date"`
	Status         string         `gorm:"type:VARCHAR(20);check:status IN ('Pending','Confirmed','Withdrawn');default:'Pending'" json:"status"`
}

type ChallengeInput struct {
	Title      string     `json:"title" binding:"required,max=200"`
	Type       string     `json:"type" binding:"required,oneof=Duel MiniGame"`
	GameMode   string     `json:"game_mode" binding:"required,oneof=None TeamBattle RoundRobin"`
	TargetWins *int       `json:"target_wins,omitempty"`
	EntryFee   float64    `json:"entry_fee"`
	PrizePool  float64    `json:"prize_pool"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// ChallengeView is the list projection with the participant count.
type ChallengeView struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Type             string     `json:"type"`
	GameMode         string     `json:"game_mode"`
	Status           string     `json:"status"`
	TargetWins       *int       `json:"target_wins"`
	ScoreTeamA       int        `json:"score_team_a"`
	ScoreTeamB       int        `json:"score_team_b"`
	EntryFee         float64    `json:"entry_fee"`
	PrizePool        float64    `json:"prize_pool"`
	ParticipantCount int        `json:"participant_count"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}
