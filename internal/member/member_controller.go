package member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// MemberController handles member-related HTTP requests
type MemberController struct {
	repo MemberRepository
}

func NewMemberController(repo MemberRepository) *MemberController {
	return &MemberController{repo: repo}
}

// GetAllMembers godoc
// @Summary List all club members
// @Tags members
// @Produce json
// @Success 200 {array} Member
// @Failure 500 {object} utils.ErrorResponse
// @Router /members [get]
func (mc *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := mc.repo.GetAllMembers()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, members)
}

// GetMemberByID godoc
// @Summary Get a member by ID
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} Member
// @Failure 404 {object} utils.ErrorResponse
// @Router /members/{id} [get]
// @Security Bearer
func (mc *MemberController) GetMemberByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid member ID")
		return
	}

	m, err := mc.repo.GetMemberByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			utils.NotFoundJSON(ctx, "member")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// UpdateMember godoc
// @Summary Update own member profile
// @Description Partial update of full name, phone number and date of birth. Members can only update their own profile.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body UpdateMemberRequest true "Fields to update"
// @Success 200 {object} Member
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /members/{id} [put]
// @Security Bearer
func (mc *MemberController) UpdateMember(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid member ID")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	var req UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMemberByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			utils.NotFoundJSON(ctx, "member")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	if m.UserID != userID {
		utils.NotFoundJSON(ctx, "member")
		return
	}

	if req.FullName != nil && *req.FullName != "" {
		m.FullName = *req.FullName
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		m.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		m.DateOfBirth = req.DateOfBirth
	}

	if err := mc.repo.UpdateMember(m); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// GetTopRanking godoc
// @Summary Get the top ranked members
// @Tags members
// @Produce json
// @Param limit query int false "Number of entries (default: 5)"
// @Success 200 {array} TopRankingEntry
// @Router /members/top-ranking [get]
// @Security Bearer
func (mc *MemberController) GetTopRanking(ctx *gin.Context) {
	limit := 5
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			utils.BadRequestJSON(ctx, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := mc.repo.GetTopRanking(limit)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
