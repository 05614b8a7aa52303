package seed

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pcmclub/pcm-api/internal/booking"
	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/court"
	"github.com/pcmclub/pcm-api/internal/match"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/news"
	"github.com/pcmclub/pcm-api/internal/notification"
	"github.com/pcmclub/pcm-api/internal/transaction"
	"github.com/pcmclub/pcm-api/internal/user"
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
		&user.User{}, &user.Role{}, &user.UserRole{}, &user.RefreshToken{},
		&member.Member{},
		&news.News{},
		&court.Court{},
		&booking.Booking{},
		&challenge.Challenge{}, &challenge.Participant{},
		&match.Match{}, &match.MatchScore{},
		&transaction.TransactionCategory{}, &transaction.Transaction{},
		&notification.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestRunIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("seeding hashes many passwords, skipping in short mode")
	}
	db := setupTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	var memberCount, roleCount int64
	if err := db.Model(&member.Member{}).Count(&memberCount).Error; err != nil {
		t.Fatalf("failed to count members: %v", err)
	}
	if err := db.Model(&user.Role{}).Count(&roleCount).Error; err != nil {
		t.Fatalf("failed to count roles: %v", err)
	}
	if memberCount == 0 {
		t.Fatal("first Run created no members")
	}
	if roleCount != int64(len(roleNames)) {
		t.Fatalf("role count = %d, want %d", roleCount, len(roleNames))
	}

	if err := Run(db); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	var memberCount2 int64
	if err := db.Model(&member.Member{}).Count(&memberCount2).Error; err != nil {
		t.Fatalf("failed to count members: %v", err)
	}
	if memberCount2 != memberCount {
		t.Fatalf("second Run changed member count from %d to %d", memberCount, memberCount2)
	}
}
