package challenge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// ChallengeController handles challenge HTTP requests
type ChallengeController struct {
	repo    ChallengeRepository
	members member.MemberRepository
}

func NewChallengeController(repo ChallengeRepository, members member.MemberRepository) *ChallengeController {
	return &ChallengeController{repo: repo, members: members}
}

// GetAllChallenges godoc
// @Summary List all challenges
// @Tags challenges
// @Produce json
// @Success 200 {array} ChallengeView
// @Router /challenges [get]
func (cc *ChallengeController) GetAllChallenges(ctx *gin.Context) {
	views, err := cc.repo.GetAllChallenges()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// GetChallengeByID godoc
// @Summary Get a challenge by ID
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} ChallengeView
// @Failure 404 {object} utils.ErrorResponse
// @Router /challenges/{id} [get]
// @Security Bearer
func (cc *ChallengeController) GetChallengeByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid challenge ID")
		return
	}

	view, err := cc.repo.GetChallengeByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			utils.NotFoundJSON(ctx, "challenge")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CreateChallenge godoc
// @Summary Create a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param challenge body ChallengeInput true "Challenge details"
// @Success 201 {object} ChallengeView
// @Failure 400 {object} utils.ErrorResponse
// @Router /challenges [post]
// @Security Bearer
func (cc *ChallengeController) CreateChallenge(ctx *gin.Context) {
	var input ChallengeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	m, err := cc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.BadRequestJSON(ctx, "no member profile for current user")
		return
	}

	c := &Challenge{
		Title:      input.Title,
		Type:       input.Type,
		GameMode:   input.GameMode,
		Status:     StatusOpen,
		TargetWins: input.TargetWins,
		EntryFee:   input.EntryFee,
		PrizePool:  input.PrizePool,
		CreatedBy:  m.ID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	if err := cc.repo.CreateChallenge(c); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	view, err := cc.repo.GetChallengeByID(c.ID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}

// JoinChallenge godoc
// @Summary Join an open challenge
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Challenge closed or already joined"
// @Router /challenges/{id}/join [post]
// @Security Bearer
func (cc *ChallengeController) JoinChallenge(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid challenge ID")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	m, err := cc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.BadRequestJSON(ctx, "no member profile for current user")
		return
	}

	if err := cc.repo.JoinChallenge(uint(id), m.ID); err != nil {
		switch {
		case errors.Is(err, ErrChallengeNotFound),
			errors.Is(err, ErrChallengeClosed),
			errors.Is(err, ErrAlreadyJoined):
			utils.BadRequestJSON(ctx, "Cannot join this challenge")
		default:
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Joined successfully", nil)
}

// AutoDivideTeams godoc
// @Summary Divide participants into two balanced teams
// @Description Sorts participants by member rank descending and assigns alternating TeamA/TeamB labels. TeamBattle challenges only.
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Wrong game mode"
// @Router /challenges/{id}/auto-divide-teams [post]
// @Security Bearer
func (cc *ChallengeController) AutoDivideTeams(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid challenge ID")
		return
	}

	if err := cc.repo.AutoDivideTeams(uint(id)); err != nil {
		switch {
		case errors.Is(err, ErrChallengeNotFound), errors.Is(err, ErrNotTeamBattle):
			utils.BadRequestJSON(ctx, "Cannot divide teams")
		default:
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Teams divided successfully", nil)
}
