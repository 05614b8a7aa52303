package court

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterCourtRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCourtRepository(db)
	controller := NewCourtController(repo)

	public := router.Group("/courts")
	public.GET("", controller.GetAllCourts)

	admin := router.Group("/courts")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db), rmiddleware.AdminMiddleware())
	{
		admin.POST("", controller.CreateCourt)
		admin.PUT("/:id", controller.UpdateCourt)
		admin.DELETE("/:id", controller.DeleteCourt)
	}
}
