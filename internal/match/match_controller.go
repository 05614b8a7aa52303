package match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// MatchController handles match recording HTTP requests
type MatchController struct {
	repo MatchRepository
}

func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// GetAllMatches godoc
// @Summary List all matches
// @Tags matches
// @Produce json
// @Success 200 {array} MatchView
// @Router /matches [get]
func (mc *MatchController) GetAllMatches(ctx *gin.Context) {
	views, err := mc.repo.GetAllMatches()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} MatchView
// @Failure 404 {object} utils.ErrorResponse
// @Router /matches/{id} [get]
// @Security Bearer
func (mc *MatchController) GetMatchByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid match ID")
		return
	}

	view, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			utils.NotFoundJSON(ctx, "match")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CreateMatch godoc
// @Summary Record a match
// @Description Persists the match and, atomically, applies rank and win/loss counter updates for ranked results and advances the linked TeamBattle challenge score.
// @Tags matches
// @Accept json
// @Produce json
// @Param match body MatchInput true "Match details"
// @Success 201 {object} MatchView
// @Failure 400 {object} utils.ErrorResponse "Unknown player or invalid input"
// @Router /matches [post]
// @Security Bearer
func (mc *MatchController) CreateMatch(ctx *gin.Context) {
	var input MatchInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	m := &Match{
		Date:           input.Date,
		IsRanked:       true,
		ChallengeID:    input.ChallengeID,
		Format:         input.Format,
		Team1Player1ID: input.Team1Player1ID,
		Team1Player2ID: input.Team1Player2ID,
		Team2Player1ID: input.Team2Player1ID,
		Team2Player2ID: input.Team2Player2ID,
		WinningSide:    input.WinningSide,
	}
	if input.IsRanked != nil {
		m.IsRanked = *input.IsRanked
	}
	for _, s := range input.Scores {
		m.Scores = append(m.Scores, MatchScore{
			SetNumber:  s.SetNumber,
			Team1Score: s.Team1Score,
			Team2Score: s.Team2Score,
			IsFinalSet: s.IsFinalSet,
		})
	}

	if err := mc.repo.CreateMatch(m); err != nil {
		switch {
		case errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrDuplicatePlayer):
			utils.BadRequestJSON(ctx, err.Error())
		default:
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	view, err := mc.repo.GetMatchByID(m.ID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}
