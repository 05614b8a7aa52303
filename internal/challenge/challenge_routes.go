package challenge

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterChallengeRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewChallengeRepository(db)
	controller := NewChallengeController(repo, member.NewMemberRepository(db))

	public := router.Group("/challenges")
	public.GET("", controller.GetAllChallenges)

	protected := router.Group("/challenges")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/:id", controller.GetChallengeByID)
		protected.POST("", controller.CreateChallenge)
		protected.POST("/:id/join", controller.JoinChallenge)

		referee := protected.Group("")
		referee.Use(rmiddleware.RefereeOrAdminMiddleware())
		{
			referee.POST("/:id/auto-divide-teams", controller.AutoDivideTeams)
		}
	}
}
