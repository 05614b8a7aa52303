package match

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/notification"
)

const (
	rankStep = 0.1
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrPlayerNotFound  = errors.New("referenced player does not exist")
	ErrDuplicatePlayer = errors.New("a player cannot appear on both sides")
)

type MatchRepository interface {
	GetAllMatches() ([]MatchView, error)
	GetMatchByID(id uint) (*MatchView, error)
	// CreateMatch persists the match and, in the same transaction,
	// applies rank/counter updates for ranked results and advances the
	// team score of a linked TeamBattle challenge.
	CreateMatch(m *Match) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

const matchViewSelect = `matches.id, matches.date, matches.is_ranked, matches.challenge_id, challenges.title AS challenge_title, matches.format,
t1p1.full_name AS team1_player1_name, t1p2.full_name AS team1_player2_name,
t2p1.full_name AS team2_player1_name, t2p2.full_name AS team2_player2_name,
matches.winning_side`

func matchViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&Match{}).
		Select(matchViewSelect).
		Joins("LEFT JOIN challenges ON challenges.id = matches.challenge_id").
		Joins("JOIN members t1p1 ON t1p1.id = matches.team1_player1_id").
		Joins("LEFT JOIN members t1p2 ON t1p2.id = matches.team1_player2_id").
		Joins("JOIN members t2p1 ON t2p1.id = matches.team2_player1_id").
		Joins("LEFT JOIN members t2p2 ON t2p2.id = matches.team2_player2_id")
}

func (r *matchRepository) GetAllMatches() ([]MatchView, error) {
	var views []MatchView
	err := matchViewQuery(r.db).
		Order("matches.date DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *matchRepository) GetMatchByID(id uint) (*MatchView, error) {
	var view MatchView
	result := matchViewQuery(r.db).
		Where("matches.id = ?", id).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMatchNotFound
	}
	return &view, nil
}

func (r *matchRepository) CreateMatch(m *Match) error {
	winners, losers, err := splitSides(m)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Every referenced player must resolve before anything is
		// written; an unresolvable id is a validation error, not a
		// silently skipped update.
		players := make(map[uint]*member.Member, len(winners)+len(losers))
		for _, id := range append(append([]uint{}, winners...), losers...) {
			var p member.Member
			if err := tx.First(&p, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: member %d", ErrPlayerNotFound, id)
				}
				return err
			}
			players[id] = &p
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}

		if m.IsRanked && m.WinningSide != SideNone {
			for _, id := range winners {
				p := players[id]
				p.RankLevel += rankStep
				p.TotalMatches++
				p.WinMatches++
				if err := tx.Save(p).Error; err != nil {
					return err
				}
			}
			for _, id := range losers {
				p := players[id]
				p.RankLevel -= rankStep
				if p.RankLevel < 0 {
					p.RankLevel = 0
				}
				p.TotalMatches++
				if err := tx.Save(p).Error; err != nil {
					return err
				}
			}
		}

		if m.ChallengeID != nil && m.WinningSide != SideNone {
			if err := advanceChallengeScore(tx, m); err != nil {
				return err
			}
		}

		return nil
	})
}

// splitSides returns the winning and losing player ids. When the
// winning side is None the "winners" are team 1 by convention; callers
// only use the split for ranked results.
func splitSides(m *Match) (winners, losers []uint, err error) {
	team1 := []uint{m.Team1Player1ID}
	if m.Team1Player2ID != nil {
		team1 = append(team1, *m.Team1Player2ID)
	}
	team2 := []uint{m.Team2Player1ID}
	if m.Team2Player2ID != nil {
		team2 = append(team2, *m.Team2Player2ID)
	}

	seen := make(map[uint]bool, len(team1)+len(team2))
	for _, id := range append(append([]uint{}, team1...), team2...) {
		if seen[id] {
			return nil, nil, ErrDuplicatePlayer
		}
		seen[id] = true
	}

	if m.WinningSide == SideTeam2 {
		return team2, team1, nil
	}
	return team1, team2, nil
}

// advanceChallengeScore maps the winning match side onto the linked
// TeamBattle challenge's teams via the team-1 first player's
// participant record, increments that team's score, and finishes the
// challenge once a configured target is reached.
func advanceChallengeScore(tx *gorm.DB, m *Match) error {
	var c challenge.Challenge
	if err := tx.First(&c, *m.ChallengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if c.GameMode != challenge.GameModeTeamBattle {
		return nil
	}

	var p challenge.Participant
	err := tx.Where("challenge_id = ? AND member_id = ?", c.ID, m.Team1Player1ID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Until teams are divided the participant carries no team, so the
	// result cannot be attributed to either side.
	if p.Team != challenge.TeamA && p.Team != challenge.TeamB {
		return nil
	}

	// The team-1 side of the match belongs to the challenge team of its
	// first player; the winner's challenge team takes the point.
	winnerTeam := p.Team
	if m.WinningSide == SideTeam2 {
		if p.Team == challenge.TeamA {
			winnerTeam = challenge.TeamB
		} else {
			winnerTeam = challenge.TeamA
		}
	}

	if winnerTeam == challenge.TeamA {
		c.ScoreTeamA++
	} else {
		c.ScoreTeamB++
	}

	finished := false
	if c.TargetWins != nil && (c.ScoreTeamA >= *c.TargetWins || c.ScoreTeamB >= *c.TargetWins) {
		c.Status = challenge.StatusFinished
		finished = true
	}

	if err := tx.Save(&c).Error; err != nil {
		return err
	}

	if finished {
		return notifyChallengeFinished(tx, &c)
	}
	return nil
}

func notifyChallengeFinished(tx *gorm.DB, c *challenge.Challenge) error {
	var participants []challenge.Participant
	if err := tx.Where("challenge_id = ?", c.ID).Find(&participants).Error; err != nil {
		return err
	}

	for _, p := range participants {
		n := notification.Notification{
			MemberID: p.MemberID,
			Title:    "Challenge finished",
			Content:  fmt.Sprintf("The challenge %q has finished %d - %d.", c.Title, c.ScoreTeamA, c.ScoreTeamB),
			Type:     notification.TypeSuccess,
		}
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
	}
	return nil
}
