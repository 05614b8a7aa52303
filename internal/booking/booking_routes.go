package booking

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/rmiddleware"
)

func RegisterBookingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewBookingRepository(db)
	controller := NewBookingController(repo, member.NewMemberRepository(db))

	public := router.Group("/bookings")
	{
		public.GET("", controller.GetAllBookings)
		public.GET("/available-slots", controller.CheckAvailability)
	}

	protected := router.Group("/bookings")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.POST("", controller.CreateBooking)
		protected.DELETE("/:id", controller.DeleteBooking)

		admin := protected.Group("")
		admin.Use(rmiddleware.AdminMiddleware())
		{
			admin.PUT("/:id/approve", controller.ApproveBooking)
			admin.PUT("/:id/reject", controller.RejectBooking)
		}
	}
}
