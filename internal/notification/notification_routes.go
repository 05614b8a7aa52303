package notification

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
)

func RegisterNotificationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewNotificationRepository(db)
	controller := NewNotificationController(repo, member.NewMemberRepository(db))

	protected := router.Group("/notifications")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("", controller.GetMyNotifications)
		protected.PUT("/:id/read", controller.MarkRead)
	}
}
