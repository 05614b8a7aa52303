package court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// CourtController handles court HTTP requests
type CourtController struct {
	repo CourtRepository
}

func NewCourtController(repo CourtRepository) *CourtController {
	return &CourtController{repo: repo}
}

// GetAllCourts godoc
// @Summary List all courts
// @Tags courts
// @Produce json
// @Success 200 {array} Court
// @Router /courts [get]
func (cc *CourtController) GetAllCourts(ctx *gin.Context) {
	courts, err := cc.repo.GetAllCourts()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courts)
}

// CreateCourt godoc
// @Summary Create a court
// @Tags courts
// @Accept json
// @Produce json
// @Param court body CourtInput true "Court details"
// @Success 201 {object} Court
// @Failure 400 {object} utils.ErrorResponse
// @Router /courts [post]
// @Security Bearer
func (cc *CourtController) CreateCourt(ctx *gin.Context) {
	var input CourtInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	c := &Court{
		Name:        input.Name,
		IsActive:    true,
		Description: input.Description,
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := cc.repo.CreateCourt(c); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, c)
}

// UpdateCourt godoc
// @Summary Update a court
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param court body CourtInput true "Court details"
// @Success 200 {object} Court
// @Failure 404 {object} utils.ErrorResponse
// @Router /courts/{id} [put]
// @Security Bearer
func (cc *CourtController) UpdateCourt(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid court ID")
		return
	}

	var input CourtInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	c, err := cc.repo.GetCourtByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			utils.NotFoundJSON(ctx, "court")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	c.Name = input.Name
	c.Description = input.Description
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := cc.repo.UpdateCourt(c); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c)
}

// DeleteCourt godoc
// @Summary Delete a court
// @Tags courts
// @Param id path int true "Court ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /courts/{id} [delete]
// @Security Bearer
func (cc *CourtController) DeleteCourt(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid court ID")
		return
	}

	if err := cc.repo.DeleteCourt(uint(id)); err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			utils.NotFoundJSON(ctx, "court")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
