package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/member"
)

const (
	FormatSingles = "Singles"
	FormatDoubles = "Doubles"

	SideNone  = "None"
	SideTeam1 = "Team1"
	SideTeam2 = "Team2"
)

// Match records a played game. It is immutable once created; rank and
// challenge-score side effects happen as part of the same unit of work
// as the insert.
type Match struct {
	gorm.Model
	Date        time.Time            `gorm:"not null" json:"date"`
	IsRanked    bool                 `gorm:"default:true" json:"is_ranked"`
	ChallengeID *uint                `json:"challenge_id"`
	Challenge   *challenge.Challenge `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Format      string               `gorm:"type:VARCHAR(10);check:format IN ('Singles','Doubles');not null" json:"format"`

	Team1Player1ID uint           `gorm:"not null" json:"team1_player1_id"`
	Team1Player1   *member.Member `gorm:"foreignKey:Team1Player1ID;constraint:OnDelete:RESTRICT" json:"-"`
	Team1Player2ID *uint          `json:"team1_player2_id"`
	Team1Player2   *member.Member `gorm:"foreignKey:Team1Player2ID;constraint:OnDelete:RESTRICT" json:"-"`
	Team2Player1ID uint           `gorm:"not null" json:"team2_player1_id"`
	Team2Player1   *member.Member `gorm:"foreignKey:Team2Player1ID;constraint:OnDelete:RESTRICT" json:"-"`
	Team2Player2ID *uint          `json:"team2_player2_id"`
	Team2Player2   *member.Member `gorm:"foreignKey:Team2Player2ID;constraint:OnDelete:RESTRICT" json:"-"`

	WinningSide string `gorm:"type:VARCHAR(10);check:winning_side IN ('None','Team1','Team2');default:'None'" json:"winning_side"`

	Scores []MatchScore `gorm:"constraint:OnDelete:CASCADE" json:"scores"`
}

// MatchScore is one set's score line.
type MatchScore struct {
	gorm.Model
	MatchID    uint `gorm:"not null;index" json:"match_id"`
	SetNumber  int  `json:"set_number"`
	Team1Score int  `json:"team1_score"`
	Team2Score int  `json:"team2_score"`
	IsFinalSet bool `gorm:"default:false" json:"is_final_set"`
}

type MatchScoreInput struct {
	SetNumber  int  `json:"set_number"`
	Team1Score int  `json:"team1_score"`
	Team2Score int  `json:"team2_score"`
	IsFinalSet bool `json:"is_final_set"`
}

type MatchInput struct {
	Date           time.Time         `json:"date" binding:"required"`
	IsRanked       *bool             `json:"is_ranked"`
	ChallengeID    *uint             `json:"challenge_id,omitempty"`
	Format         string            `json:"format" binding:"required,oneof=Singles Doubles"`
	Team1Player1ID uint              `json:"team1_player1_id" binding:"required"`
	Team1Player2ID *uint             `json:"team1_player2_id,omitempty"`
	Team2Player1ID uint              `json:"team2_player1_id" binding:"required"`
	Team2Player2ID *uint             `json:"team2_player2_id,omitempty"`
	WinningSide    string            `json:"winning_side" binding:"required,oneof=None Team1 Team2"`
	Scores         []MatchScoreInput `json:"scores,omitempty"`
}

// MatchView is the projection with resolved player display names.
type MatchView struct {
	ID               uint      `json:"id"`
	Date             time.Time `json:"date"`
	IsRanked         bool      `json:"is_ranked"`
	ChallengeID      *uint     `json:"challenge_id"`
	ChallengeTitle   *string   `json:"challenge_title"`
	Format           string    `json:"format"`
	Team1Player1Name string    `json:"team1_player1_name"`
	Team1Player2Name *string   `json:"team1_player2_name"`
	Team2Player1Name string    `json:"team2_player1_name"`
	Team2Player2Name *string   `json:"team2_player2_name"`
	WinningSide      string    `json:"winning_side"`
}
