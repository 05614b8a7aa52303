package news

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterNewsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewNewsRepository(db)
	controller := NewNewsController(repo)

	public := router.Group("/news")
	{
		public.GET("", controller.GetAllNews)
		public.GET("/:id", controller.GetNewsByID)
	}

	admin := router.Group("/news")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db), rmiddleware.AdminMiddleware())
	{
		admin.POST("", controller.CreateNews)
		admin.PUT("/:id", controller.UpdateNews)
		admin.DELETE("/:id", controller.DeleteNews)
	}
}
