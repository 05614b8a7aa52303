package seed

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/court"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/news"
	"github.com/pcmclub/pcm-api/internal/transaction"
	"github.com/pcmclub/pcm-api/internal/user"
	"github.com/pcmclub/pcm-api/utils"
)

var roleNames = []string{"Admin", "Treasurer", "Referee", "Member"}

// Run populates an empty database with roles, demo accounts and sample
// club data. It is a no-op when members already exist, so it is safe to
// call on every startup.
func Run(db *gorm.DB) error {
	var memberCount int64
	if err := db.Model(&member.Member{}).Count(&memberCount).Error; err != nil {
		return err
	}
	if memberCount > 0 {
		return nil
	}

	log.Println("Seeding database with demo data...")

	return db.Transaction(func(tx *gorm.DB) error {
		roles := make(map[string]user.Role, len(roleNames))
		for _, name := range roleNames {
			r := user.Role{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&r).Error; err != nil {
				return err
			}
			roles[name] = r
		}

		admin, err := createAccount(tx, "admin@pcm.com", "Admin@123", "Club Admin", 5.0, roles["Admin"])
		if err != nil {
			return err
		}

		demo := []struct {
			Name  string
			Email string
			Rank  float64
		}{
			{"Alice Tran", "alice@pcm.com", 4.5},
			{"Bob Nguyen", "bob@pcm.com", 4.2},
			{"Carol Le", "carol@pcm.com", 4.8},
			{"Daniel Pham", "daniel@pcm.com", 4.0},
			{"Emma Hoang", "emma@pcm.com", 3.8},
			{"Felix Vo", "felix@pcm.com", 4.3},
			{"Grace Dang", "grace@pcm.com", 4.6},
			{"Henry Bui", "henry@pcm.com", 3.9},
		}

		members := make([]*member.Member, 0, len(demo))
		for _, d := range demo {
			m, err := createAccount(tx, d.Email, "Member@123", d.Name, d.Rank, roles["Member"])
			if err != nil {
				return err
			}
			members = append(members, m)
		}

		courts := []court.Court{
			{Name: "Court 1", IsActive: true, Description: "Main court with good lighting"},
			{Name: "Court 2", IsActive: true, Description: "Secondary court"},
		}
		if err := tx.Create(&courts).Error; err != nil {
			return err
		}

		categories := []transaction.TransactionCategory{
			{Name: "Court fees", Type: transaction.TypeIncome},
			{Name: "Monthly dues", Type: transaction.TypeIncome},
			{Name: "Drinks", Type: transaction.TypeExpense},
			{Name: "Fines", Type: transaction.TypeExpense},
			{Name: "Prize money", Type: transaction.TypeExpense},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		transactions := []transaction.Transaction{
			{Date: time.Now().AddDate(0, -1, 0), Amount: 1000, Description: "Monthly dues collection", CategoryID: categories[1].ID, CreatedBy: admin.ID, Status: transaction.StatusPending},
			{Date: time.Now().AddDate(0, 0, -15), Amount: 500, Description: "Court fee collection", CategoryID: categories[0].ID, CreatedBy: admin.ID, Status: transaction.StatusPending},
			{Date: time.Now().AddDate(0, 0, -10), Amount: 200, Description: "Water and snacks", CategoryID: categories[2].ID, CreatedBy: admin.ID, Status: transaction.StatusPending},
		}
		if err := tx.Create(&transactions).Error; err != nil {
			return err
		}

		posts := []news.News{
			{Title: "January mini-game tournament", Content: "The club is hosting a mini-game tournament at the end of January. Everyone is welcome!", IsPinned: true},
			{Title: "Holiday schedule", Content: "The club is closed during the new year holidays. Happy new year!", IsPinned: true},
			{Title: "Member spotlight", Content: "Congratulations to Carol Le on reaching rank 4.8, the highest in the club!", IsPinned: false},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return err
		}

		targetWins := 5
		c := challenge.Challenge{
			Title:      "New Year Team Battle",
			Type:       challenge.TypeMiniGame,
			GameMode:   challenge.GameModeTeamBattle,
			Status:     challenge.StatusOpen,
			TargetWins: &targetWins,
			EntryFee:   10,
			PrizePool:  100,
			CreatedBy:  admin.ID,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		for _, m := range members {
			p := challenge.Participant{
				ChallengeID:    c.ID,
				MemberID:       m.ID,
				Team:           challenge.TeamNone,
				EntryFeePaid:   true,
				EntryFeeAmount: c.EntryFee,
				JoinedDate:     time.Now(),
				Status:         challenge.ParticipantConfirmed,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		log.Println("Database seeding complete")
		return nil
	})
}

func createAccount(tx *gorm.DB, email, password, fullName string, rank float64, role user.Role) (*member.Member, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", email, err)
	}

	u := user.User{Email: email, Password: hashed, FullName: fullName}
	if err := tx.Create(&u).Error; err != nil {
		return nil, err
	}
	if err := tx.Create(&user.UserRole{UserID: u.ID, RoleID: role.ID}).Error; err != nil {
		return nil, err
	}

	m := member.Member{
		UserID:    u.ID,
		FullName:  fullName,
		Email:     email,
		JoinDate:  time.Now().AddDate(0, -6, 0),
		RankLevel: rank,
		Status:    member.StatusActive,
	}
	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
