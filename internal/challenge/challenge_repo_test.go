package challenge

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pcmclub/pcm-api/internal/member"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&member.Member{}, &Challenge{}, &Participant{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createMember(t *testing.T, db *gorm.DB, userID uint, name string, rank float64) *member.Member {
	t.Helper()
	m := &member.Member{
		UserID:    userID,
		FullName:  name,
		JoinDate:  time.Now(),
		RankLevel: rank,
		Status:    member.StatusActive,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to create member %s: %v", name, err)
	}
	return m
}

func createChallenge(t *testing.T, db *gorm.DB, gameMode, status string, creatorID uint, entryFee float64) *Challenge {
	t.Helper()
	c := &Challenge{
		Title:     "Test Challenge",
		Type:      TypeMiniGame,
		GameMode:  gameMode,
		Status:    status,
		EntryFee:  entryFee,
		CreatedBy: creatorID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create challenge: %v", err)
	}
	return c
}

func TestJoinChallenge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	m := createMember(t, db, 1, "Alice", 4.0)
	c := createChallenge(t, db, GameModeTeamBattle, StatusOpen, m.ID, 10)

	if err := repo.JoinChallenge(c.ID, m.ID); err != nil {
		t.Fatalf("JoinChallenge failed: %v", err)
	}

	var p Participant
	if err := db.Where("challenge_id = ? AND member_id = ?", c.ID, m.ID).First(&p).Error; err != nil {
		t.Fatalf("participant not found: %v", err)
	}
	if p.Status != ParticipantConfirmed {
		t.Errorf("participant status = %s, want Confirmed", p.Status)
	}
	if p.Team != TeamNone {
		t.Errorf("participant team = %s, want None before division", p.Team)
	}
	if !p.EntryFeePaid || p.EntryFeeAmount != 10 {
		t.Errorf("entry fee = paid:%v amount:%v, want paid:true amount:10", p.EntryFeePaid, p.EntryFeeAmount)
	}
}

func TestJoinChallengeRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	m := createMember(t, db, 1, "Alice", 4.0)
	c := createChallenge(t, db, GameModeTeamBattle, StatusOpen, m.ID, 0)

	if err := repo.JoinChallenge(c.ID, m.ID); err != nil {
		t.Fatalf("first JoinChallenge failed: %v", err)
	}
	if err := repo.JoinChallenge(c.ID, m.ID); !errors.Is(err, ErrAlreadyJoined) {
		t.Fatalf("second JoinChallenge error = %v, want ErrAlreadyJoined", err)
	}
}

func TestJoinChallengeRejectsClosedChallenge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	m := createMember(t, db, 1, "Alice", 4.0)

	for _, status := range []string{StatusOngoing, StatusFinished} {
		c := createChallenge(t, db, GameModeTeamBattle, status, m.ID, 0)
		if err := repo.JoinChallenge(c.ID, m.ID); !errors.Is(err, ErrChallengeClosed) {
			t.Errorf("JoinChallenge on %s challenge: error = %v, want ErrChallengeClosed", status, err)
		}
	}
}

func TestJoinChallengeNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	if err := repo.JoinChallenge(99, 1); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("JoinChallenge error = %v, want ErrChallengeNotFound", err)
	}
}

func TestAutoDivideTeamsAlternatesByRank(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	// Deliberately created out of rank order.
	m3 := createMember(t, db, 3, "Carol", 4.0)
	m1 := createMember(t, db, 1, "Alice", 5.0)
	m4 := createMember(t, db, 4, "Daniel", 3.5)
	m2 := createMember(t, db, 2, "Bob", 4.5)

	c := createChallenge(t, db, GameModeTeamBattle, StatusOpen, m1.ID, 0)
	for _, m := range []*member.Member{m1, m2, m3, m4} {
		if err := repo.JoinChallenge(c.ID, m.ID); err != nil {
			t.Fatalf("JoinChallenge failed for %s: %v", m.FullName, err)
		}
	}

	if err := repo.AutoDivideTeams(c.ID); err != nil {
		t.Fatalf("AutoDivideTeams failed: %v", err)
	}

	// Strongest first, alternating: 5.0->A, 4.5->B, 4.0->A, 3.5->B.
	want := map[uint]string{
		m1.ID: TeamA,
		m2.ID: TeamB,
		m3.ID: TeamA,
		m4.ID: TeamB,
	}
	participants, err := repo.GetParticipants(c.ID)
	if err != nil {
		t.Fatalf("GetParticipants failed: %v", err)
	}
	if len(participants) != 4 {
		t.Fatalf("participant count = %d, want 4", len(participants))
	}
	for _, p := range participants {
		if p.Team != want[p.MemberID] {
			t.Errorf("member %d assigned %s, want %s", p.MemberID, p.Team, want[p.MemberID])
		}
	}
}

func TestAutoDivideTeamsRequiresTeamBattleMode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	m := createMember(t, db, 1, "Alice", 4.0)
	c := createChallenge(t, db, GameModeRoundRobin, StatusOpen, m.ID, 0)

	if err := repo.AutoDivideTeams(c.ID); !errors.Is(err, ErrNotTeamBattle) {
		t.Fatalf("AutoDivideTeams error = %v, want ErrNotTeamBattle", err)
	}
}

func TestGetChallengeByIDIncludesParticipantCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	m1 := createMember(t, db, 1, "Alice", 4.0)
	m2 := createMember(t, db, 2, "Bob", 3.5)
	c := createChallenge(t, db, GameModeTeamBattle, StatusOpen, m1.ID, 0)
	for _, m := range []*member.Member{m1, m2} {
		if err := repo.JoinChallenge(c.ID, m.ID); err != nil {
			t.Fatalf("JoinChallenge failed: %v", err)
		}
	}

	view, err := repo.GetChallengeByID(c.ID)
	if err != nil {
		t.Fatalf("GetChallengeByID failed: %v", err)
	}
	if view.ParticipantCount != 2 {
		t.Errorf("ParticipantCount = %d, want 2", view.ParticipantCount)
	}
}

func TestGetChallengeByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChallengeRepository(db)

	if _, err := repo.GetChallengeByID(99); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("GetChallengeByID error = %v, want ErrChallengeNotFound", err)
	}
}
