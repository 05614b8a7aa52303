package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/auth"
	"github.com/pcmclub/pcm-api/internal/booking"
	"github.com/pcmclub/pcm-api/internal/challenge"
	"github.com/pcmclub/pcm-api/internal/court"
	"github.com/pcmclub/pcm-api/internal/match"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/news"
	"github.com/pcmclub/pcm-api/internal/notification"
	"github.com/pcmclub/pcm-api/internal/transaction"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth.RegisterAuthRoutes(api, db, appConfig)
	member.RegisterMemberRoutes(api, db, appConfig)
	news.RegisterNewsRoutes(api, db, appConfig)
	court.RegisterCourtRoutes(api, db, appConfig)
	booking.RegisterBookingRoutes(api, db, appConfig)
	challenge.RegisterChallengeRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig)
	transaction.RegisterTransactionRoutes(api, db, appConfig)
	notification.RegisterNotificationRoutes(api, db, appConfig)

	return r
}
