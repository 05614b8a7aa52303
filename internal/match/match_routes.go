package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMatchRepository(db)
	controller := NewMatchController(repo)

	public := router.Group("/matches")
	public.GET("", controller.GetAllMatches)

	protected := router.Group("/matches")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/:id", controller.GetMatchByID)

		referee := protected.Group("")
		referee.Use(rmiddleware.RefereeOrAdminMiddleware())
		{
			referee.POST("", controller.CreateMatch)
		}
	}
}
