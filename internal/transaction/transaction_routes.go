package transaction

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterTransactionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTransactionRepository(db)
	controller := NewTransactionController(repo, member.NewMemberRepository(db), appConfig)

	public := router.Group("/transactions")
	{
		public.GET("", controller.GetAllTransactions)
		public.GET("/summary", controller.GetSummary)
	}

	treasury := router.Group("/transactions")
	treasury.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db), rmiddleware.TreasurerOrAdminMiddleware())
	{
		treasury.POST("", controller.CreateTransaction)
		treasury.PUT("/:id/approve", controller.ApproveTransaction)
		treasury.PUT("/:id/reject", controller.RejectTransaction)
	}

	categories := router.Group("/transaction-categories")
	categories.GET("", controller.GetAllCategories)

	adminCategories := router.Group("/transaction-categories")
	adminCategories.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db), rmiddleware.AdminMiddleware())
	{
		adminCategories.POST("", controller.CreateCategory)
		adminCategories.PUT("/:id", controller.UpdateCategory)
		adminCategories.DELETE("/:id", controller.DeleteCategory)
	}
}
