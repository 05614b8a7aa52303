package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/utils"
)

type NotificationController struct {
	repo    NotificationRepository
	members member.MemberRepository
}

func NewNotificationController(repo NotificationRepository, members member.MemberRepository) *NotificationController {
	return &NotificationController{repo: repo, members: members}
}

// GetMyNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} Notification
// @Router /notifications [get]
// @Security Bearer
func (nc *NotificationController) GetMyNotifications(ctx *gin.Context) {
	m, ok := nc.currentMember(ctx)
	if !ok {
		return
	}

	items, err := nc.repo.GetByMemberID(m.ID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// MarkRead godoc
// @Summary Mark one of the caller's notifications as read
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /notifications/{id}/read [put]
// @Security Bearer
func (nc *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid notification ID")
		return
	}

	m, ok := nc.currentMember(ctx)
	if !ok {
		return
	}

	if err := nc.repo.MarkRead(uint(id), m.ID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			utils.NotFoundJSON(ctx, "notification")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	utils.SuccessJSON(ctx, http.StatusOK, "Marked as read", nil)
}

func (nc *NotificationController) currentMember(ctx *gin.Context) (*member.Member, bool) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return nil, false
	}
	m, err := nc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.BadRequestJSON(ctx, "no member profile for current user")
		return nil, false
	}
	return m, true
}
