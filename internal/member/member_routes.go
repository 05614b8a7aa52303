package member

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/middleware"
)

func RegisterMemberRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMemberRepository(db)
	controller := NewMemberController(repo)

	members := router.Group("/members")
	members.GET("", controller.GetAllMembers)

	protected := router.Group("/members")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/top-ranking", controller.GetTopRanking)
		protected.GET("/:id", controller.GetMemberByID)
		protected.PUT("/:id", controller.UpdateMember)
	}
}
