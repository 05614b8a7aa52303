package main

import (
	"log"

	"github.com/pcmclub/pcm-api/config"
	_ "github.com/pcmclub/pcm-api/docs"
	"github.com/pcmclub/pcm-api/internal/booking"
	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/court"
	"github.com/pcmclub/pcm-api/internal/match"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/news"
	"github.com/pcmclub/pcm-api/internal/notification"
	"github.com/pcmclub/pcm-api/internal/seed"
	"github.com/pcmclub/pcm-api/internal/transaction"
	"github.com/pcmclub/pcm-api/internal/user"
	"github.com/pcmclub/pcm-api/routes"
)

// @title Pickleball Club Management API
// @version 1.0
// @description REST backend for club members, bookings, challenges, matches and treasury.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	db := config.DB

	err := db.AutoMigrate(
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
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := seed.Run(db); err != nil {
		log.Fatalf("Database seeding failed: %v", err)
	}

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
