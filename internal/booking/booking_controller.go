package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// BookingController handles court booking HTTP requests
type BookingController struct {
	repo    BookingRepository
	members member.MemberRepository
}

func NewBookingController(repo BookingRepository, members member.MemberRepository) *BookingController {
	return &BookingController{repo: repo, members: members}
}

// GetAllBookings godoc
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} BookingView
// @Router /bookings [get]
func (bc *BookingController) GetAllBookings(ctx *gin.Context) {
	views, err := bc.repo.GetAllBookings()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// CreateBooking godoc
// @Summary Book a court
// @Description Creates a pending booking for the caller if the requested slot does not overlap any non-cancelled booking on the court.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body BookingInput true "Requested slot"
// @Success 201 {object} Booking
// @Failure 400 {object} utils.ErrorResponse "Slot unavailable or invalid input"
// @Router /bookings [post]
// @Security Bearer
func (bc *BookingController) CreateBooking(ctx *gin.Context) {
	var input BookingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	if !input.EndTime.After(input.StartTime) {
		utils.BadRequestJSON(ctx, "end time must be after start time")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	m, err := bc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.BadRequestJSON(ctx, "no member profile for current user")
		return
	}

	b := &Booking{
		CourtID:   input.CourtID,
		MemberID:  m.ID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    StatusPending,
		Notes:     input.Notes,
	}

	if err := bc.repo.CreateBooking(b); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			utils.BadRequestJSON(ctx, "Time slot is not available or invalid")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, b)
}

// ApproveBooking godoc
// @Summary Approve a pending booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings/{id}/approve [put]
// @Security Bearer
func (bc *BookingController) ApproveBooking(ctx *gin.Context) {
	bc.decideBooking(ctx, StatusConfirmed, "Approved")
}

// RejectBooking godoc
// @Summary Reject a pending booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings/{id}/reject [put]
// @Security Bearer
func (bc *BookingController) RejectBooking(ctx *gin.Context) {
	bc.decideBooking(ctx, StatusRejected, "Rejected")
}

func (bc *BookingController) decideBooking(ctx *gin.Context, status, message string) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid booking ID")
		return
	}

	if err := bc.repo.UpdateBookingStatus(uint(id), status); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			utils.NotFoundJSON(ctx, "booking")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	utils.SuccessJSON(ctx, http.StatusOK, message, nil)
}

// DeleteBooking godoc
// @Summary Delete own booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings/{id} [delete]
// @Security Bearer
func (bc *BookingController) DeleteBooking(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid booking ID")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	m, err := bc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.NotFoundJSON(ctx, "booking")
		return
	}

	b, err := bc.repo.GetBookingByID(uint(id))
	if err != nil || b.MemberID != m.ID {
		utils.NotFoundJSON(ctx, "booking")
		return
	}

	if err := bc.repo.DeleteBooking(b.ID); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CheckAvailability godoc
// @Summary Check whether a court slot is free
// @Tags bookings
// @Produce json
// @Param courtId query int true "Court ID"
// @Param startTime query string true "Slot start (RFC3339)"
// @Param endTime query string true "Slot end (RFC3339)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utils.ErrorResponse
// @Router /bookings/available-slots [get]
func (bc *BookingController) CheckAvailability(ctx *gin.Context) {
	courtID, err := strconv.ParseUint(ctx.Query("courtId"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid courtId parameter")
		return
	}

	start, err := time.Parse(time.RFC3339, ctx.Query("startTime"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid startTime parameter, expected RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, ctx.Query("endTime"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid endTime parameter, expected RFC3339")
		return
	}

	available, err := bc.repo.CheckAvailability(uint(courtID), start, end)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"isAvailable": available})
}
