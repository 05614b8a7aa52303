package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	public := router.Group("/auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
		public.POST("/refresh-token", controller.RefreshToken)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/me", controller.GetProfile)
	}
}
