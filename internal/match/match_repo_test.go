package match

import (
	"errors"
	"math"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/notification"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&member.Member{},
		&challenge.Challenge{}, &challenge.Participant{},
		&Match{}, &MatchScore{},
		&notification.Notification{},
	)
	if err != nil {
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

func reloadMember(t *testing.T, db *gorm.DB, id uint) *member.Member {
	t.Helper()
	var m member.Member
	if err := db.First(&m, id).Error; err != nil {
		t.Fatalf("failed to reload member %d: %v", id, err)
	}
	return &m
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreateMatchRankedAppliesRankAndCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	winner := createMember(t, db, 1, "Alice", 3.0)
	loser := createMember(t, db, 2, "Bob", 3.0)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		Format:         FormatSingles,
		Team1Player1ID: winner.ID,
		Team2Player1ID: loser.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	w := reloadMember(t, db, winner.ID)
	if !floatEquals(w.RankLevel, 3.1) {
		t.Errorf("winner rank = %v, want 3.1", w.RankLevel)
	}
	if w.TotalMatches != 1 || w.WinMatches != 1 {
		t.Errorf("winner counters = %d/%d, want 1/1", w.WinMatches, w.TotalMatches)
	}

	l := reloadMember(t, db, loser.ID)
	if !floatEquals(l.RankLevel, 2.9) {
		t.Errorf("loser rank = %v, want 2.9", l.RankLevel)
	}
	if l.TotalMatches != 1 || l.WinMatches != 0 {
		t.Errorf("loser counters = %d/%d, want 0/1", l.WinMatches, l.TotalMatches)
	}
}

func TestCreateMatchRankNeverDropsBelowZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	winner := createMember(t, db, 1, "Alice", 3.0)
	loser := createMember(t, db, 2, "Bob", 0.0)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		Format:         FormatSingles,
		Team1Player1ID: winner.ID,
		Team2Player1ID: loser.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	l := reloadMember(t, db, loser.ID)
	if !floatEquals(l.RankLevel, 0.0) {
		t.Errorf("loser rank = %v, want 0.0", l.RankLevel)
	}
}

func TestCreateMatchUnrankedHasNoRankEffects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	p1 := createMember(t, db, 1, "Alice", 3.0)
	p2 := createMember(t, db, 2, "Bob", 3.0)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       false,
		Format:         FormatSingles,
		Team1Player1ID: p1.ID,
		Team2Player1ID: p2.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	for _, id := range []uint{p1.ID, p2.ID} {
		got := reloadMember(t, db, id)
		if !floatEquals(got.RankLevel, 3.0) || got.TotalMatches != 0 {
			t.Errorf("member %d changed on unranked match: rank=%v total=%d", id, got.RankLevel, got.TotalMatches)
		}
	}
}

func TestCreateMatchWithoutWinnerHasNoEffects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	p1 := createMember(t, db, 1, "Alice", 3.0)
	p2 := createMember(t, db, 2, "Bob", 3.0)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		Format:         FormatSingles,
		Team1Player1ID: p1.ID,
		Team2Player1ID: p2.ID,
		WinningSide:    SideNone,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	for _, id := range []uint{p1.ID, p2.ID} {
		got := reloadMember(t, db, id)
		if !floatEquals(got.RankLevel, 3.0) || got.TotalMatches != 0 {
			t.Errorf("member %d changed on undecided match: rank=%v total=%d", id, got.RankLevel, got.TotalMatches)
		}
	}
}

func TestCreateMatchDoublesUpdatesAllFourPlayers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	w1 := createMember(t, db, 1, "Alice", 4.0)
	w2 := createMember(t, db, 2, "Bob", 3.5)
	l1 := createMember(t, db, 3, "Carol", 3.0)
	l2 := createMember(t, db, 4, "Daniel", 2.5)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		Format:         FormatDoubles,
		Team1Player1ID: l1.ID,
		Team1Player2ID: &l2.ID,
		Team2Player1ID: w1.ID,
		Team2Player2ID: &w2.ID,
		WinningSide:    SideTeam2,
		Scores: []MatchScore{
			{SetNumber: 1, Team1Score: 7, Team2Score: 11},
			{SetNumber: 2, Team1Score: 9, Team2Score: 11, IsFinalSet: true},
		},
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	if got := reloadMember(t, db, w1.ID); !floatEquals(got.RankLevel, 4.1) || got.WinMatches != 1 {
		t.Errorf("winner 1 rank=%v wins=%d, want 4.1/1", got.RankLevel, got.WinMatches)
	}
	if got := reloadMember(t, db, w2.ID); !floatEquals(got.RankLevel, 3.6) || got.WinMatches != 1 {
		t.Errorf("winner 2 rank=%v wins=%d, want 3.6/1", got.RankLevel, got.WinMatches)
	}
	if got := reloadMember(t, db, l1.ID); !floatEquals(got.RankLevel, 2.9) || got.TotalMatches != 1 {
		t.Errorf("loser 1 rank=%v total=%d, want 2.9/1", got.RankLevel, got.TotalMatches)
	}
	if got := reloadMember(t, db, l2.ID); !floatEquals(got.RankLevel, 2.4) || got.TotalMatches != 1 {
		t.Errorf("loser 2 rank=%v total=%d, want 2.4/1", got.RankLevel, got.TotalMatches)
	}

	var scoreCount int64
	if err := db.Model(&MatchScore{}).Where("match_id = ?", m.ID).Count(&scoreCount).Error; err != nil {
		t.Fatalf("failed to count scores: %v", err)
	}
	if scoreCount != 2 {
		t.Errorf("score rows = %d, want 2", scoreCount)
	}
}

func TestCreateMatchUnknownPlayerFailsAndPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	p1 := createMember(t, db, 1, "Alice", 3.0)

	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		Format:         FormatSingles,
		Team1Player1ID: p1.ID,
		Team2Player1ID: 999,
		WinningSide:    SideTeam1,
	}
	err := repo.CreateMatch(m)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("CreateMatch error = %v, want ErrPlayerNotFound", err)
	}

	var matchCount int64
	if err := db.Model(&Match{}).Count(&matchCount).Error; err != nil {
		t.Fatalf("failed to count matches: %v", err)
	}
	if matchCount != 0 {
		t.Errorf("match rows = %d, want 0 after failed create", matchCount)
	}
	if got := reloadMember(t, db, p1.ID); !floatEquals(got.RankLevel, 3.0) {
		t.Errorf("member rank changed after failed create: %v", got.RankLevel)
	}
}

func TestCreateMatchRejectsDuplicatePlayer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	p1 := createMember(t, db, 1, "Alice", 3.0)

	m := &Match{
		Date:           time.Now(),
		Format:         FormatSingles,
		Team1Player1ID: p1.ID,
		Team2Player1ID: p1.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("CreateMatch error = %v, want ErrDuplicatePlayer", err)
	}
}

func setupTeamBattle(t *testing.T, db *gorm.DB, creator *member.Member, targetWins int) *challenge.Challenge {
	t.Helper()
	c := &challenge.Challenge{
		Title:      "Team Battle",
		Type:       challenge.TypeMiniGame,
		GameMode:   challenge.GameModeTeamBattle,
		Status:     challenge.StatusOngoing,
		TargetWins: &targetWins,
		CreatedBy:  creator.ID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create challenge: %v", err)
	}
	return c
}

func enroll(t *testing.T, db *gorm.DB, c *challenge.Challenge, m *member.Member, team string) {
	t.Helper()
	p := challenge.Participant{
		ChallengeID: c.ID,
		MemberID:    m.ID,
		Team:        team,
		JoinedDate:  time.Now(),
		Status:      challenge.ParticipantConfirmed,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to enroll member %d: %v", m.ID, err)
	}
}

func reloadChallenge(t *testing.T, db *gorm.DB, id uint) *challenge.Challenge {
	t.Helper()
	var c challenge.Challenge
	if err := db.First(&c, id).Error; err != nil {
		t.Fatalf("failed to reload challenge %d: %v", id, err)
	}
	return &c
}

func TestCreateMatchAdvancesTeamBattleScore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	a := createMember(t, db, 1, "Alice", 4.0)
	b := createMember(t, db, 2, "Bob", 3.5)
	c := setupTeamBattle(t, db, a, 3)
	enroll(t, db, c, a, challenge.TeamA)
	enroll(t, db, c, b, challenge.TeamB)

	// Alice (TeamA) listed on side 1 wins, so TeamA takes the point.
	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		ChallengeID:    &c.ID,
		Format:         FormatSingles,
		Team1Player1ID: a.ID,
		Team2Player1ID: b.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	got := reloadChallenge(t, db, c.ID)
	if got.ScoreTeamA != 1 || got.ScoreTeamB != 0 {
		t.Errorf("scores = %d-%d, want 1-0", got.ScoreTeamA, got.ScoreTeamB)
	}
	if got.Status != challenge.StatusOngoing {
		t.Errorf("status = %s, want Ongoing", got.Status)
	}
}

func TestCreateMatchMapsSideToChallengeTeam(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	a := createMember(t, db, 1, "Alice", 4.0)
	b := createMember(t, db, 2, "Bob", 3.5)
	c := setupTeamBattle(t, db, a, 3)
	enroll(t, db, c, a, challenge.TeamA)
	enroll(t, db, c, b, challenge.TeamB)

	// Alice (TeamA) is on side 1 but side 2 wins, so the point goes to TeamB.
	m := &Match{
		Date:           time.Now(),
		IsRanked:       true,
		ChallengeID:    &c.ID,
		Format:         FormatSingles,
		Team1Player1ID: a.ID,
		Team2Player1ID: b.ID,
		WinningSide:    SideTeam2,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	got := reloadChallenge(t, db, c.ID)
	if got.ScoreTeamA != 0 || got.ScoreTeamB != 1 {
		t.Errorf("scores = %d-%d, want 0-1", got.ScoreTeamA, got.ScoreTeamB)
	}
}

func TestCreateMatchFinishesChallengeAtTargetWins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	a := createMember(t, db, 1, "Alice", 4.0)
	b := createMember(t, db, 2, "Bob", 3.5)
	c := setupTeamBattle(t, db, a, 2)
	enroll(t, db, c, a, challenge.TeamA)
	enroll(t, db, c, b, challenge.TeamB)

	for i := 0; i < 2; i++ {
		m := &Match{
			Date:           time.Now(),
			IsRanked:       false,
			ChallengeID:    &c.ID,
			Format:         FormatSingles,
			Team1Player1ID: a.ID,
			Team2Player1ID: b.ID,
			WinningSide:    SideTeam1,
		}
		if err := repo.CreateMatch(m); err != nil {
			t.Fatalf("CreateMatch %d failed: %v", i+1, err)
		}
	}

	got := reloadChallenge(t, db, c.ID)
	if got.ScoreTeamA != 2 {
		t.Errorf("ScoreTeamA = %d, want 2", got.ScoreTeamA)
	}
	if got.Status != challenge.StatusFinished {
		t.Errorf("status = %s, want Finished", got.Status)
	}

	var notifications []notification.Notification
	if err := db.Find(&notifications).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("notification rows = %d, want one per participant", len(notifications))
	}
	for _, n := range notifications {
		if n.Type != notification.TypeSuccess {
			t.Errorf("notification type = %s, want Success", n.Type)
		}
	}
}

func TestCreateMatchUndividedTeamsDoNotScore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	a := createMember(t, db, 1, "Alice", 4.0)
	b := createMember(t, db, 2, "Bob", 3.5)
	c := setupTeamBattle(t, db, a, 3)
	enroll(t, db, c, a, challenge.TeamNone)
	enroll(t, db, c, b, challenge.TeamNone)

	for _, side := range []string{SideTeam1, SideTeam2} {
		m := &Match{
			Date:           time.Now(),
			IsRanked:       false,
			ChallengeID:    &c.ID,
			Format:         FormatSingles,
			Team1Player1ID: a.ID,
			Team2Player1ID: b.ID,
			WinningSide:    side,
		}
		if err := repo.CreateMatch(m); err != nil {
			t.Fatalf("CreateMatch with %s win failed: %v", side, err)
		}
	}

	got := reloadChallenge(t, db, c.ID)
	if got.ScoreTeamA != 0 || got.ScoreTeamB != 0 {
		t.Errorf("scores = %d-%d, want 0-0 when teams are not divided", got.ScoreTeamA, got.ScoreTeamB)
	}
}

func TestCreateMatchIgnoresNonTeamBattleChallenge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	a := createMember(t, db, 1, "Alice", 4.0)
	b := createMember(t, db, 2, "Bob", 3.5)
	c := &challenge.Challenge{
		Title:     "Open Duel",
		Type:      challenge.TypeDuel,
		GameMode:  challenge.GameModeNone,
		Status:    challenge.StatusOngoing,
		CreatedBy: a.ID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create challenge: %v", err)
	}

	m := &Match{
		Date:           time.Now(),
		IsRanked:       false,
		ChallengeID:    &c.ID,
		Format:         FormatSingles,
		Team1Player1ID: a.ID,
		Team2Player1ID: b.ID,
		WinningSide:    SideTeam1,
	}
	if err := repo.CreateMatch(m); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	got := reloadChallenge(t, db, c.ID)
	if got.ScoreTeamA != 0 || got.ScoreTeamB != 0 {
		t.Errorf("scores = %d-%d, want 0-0", got.ScoreTeamA, got.ScoreTeamB)
	}
}

func TestGetMatchByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	if _, err := repo.GetMatchByID(42); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("GetMatchByID error = %v, want ErrMatchNotFound", err)
	}
}
