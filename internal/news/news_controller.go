package news

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// NewsController handles bulletin HTTP requests
type NewsController struct {
	repo NewsRepository
}

func NewNewsController(repo NewsRepository) *NewsController {
	return &NewsController{repo: repo}
}

// GetAllNews godoc
// @Summary List bulletin posts
// @Tags news
// @Produce json
// @Param pinned query boolean false "Filter by pinned flag"
// @Success 200 {array} News
// @Router /news [get]
func (nc *NewsController) GetAllNews(ctx *gin.Context) {
	var pinned *bool
	if pinnedStr := ctx.Query("pinned"); pinnedStr != "" {
		parsed, err := strconv.ParseBool(pinnedStr)
		if err != nil {
			utils.BadRequestJSON(ctx, "invalid pinned parameter")
			return
		}
		pinned = &parsed
	}

	items, err := nc.repo.GetAllNews(pinned)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetNewsByID godoc
// @Summary Get a bulletin post by ID
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} News
// @Failure 404 {object} utils.ErrorResponse
// @Router /news/{id} [get]
func (nc *NewsController) GetNewsByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid news ID")
		return
	}

	n, err := nc.repo.GetNewsByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNewsNotFound) {
			utils.NotFoundJSON(ctx, "news")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, n)
}

// CreateNews godoc
// @Summary Create a bulletin post
// @Tags news
// @Accept json
// @Produce json
// @Param news body NewsInput true "Post content"
// @Success 201 {object} News
// @Failure 400 {object} utils.ErrorResponse
// @Router /news [post]
// @Security Bearer
func (nc *NewsController) CreateNews(ctx *gin.Context) {
	var input NewsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	n := &News{
		Title:    input.Title,
		Content:  input.Content,
		IsPinned: input.IsPinned,
	}
	if err := nc.repo.CreateNews(n); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, n)
}

// UpdateNews godoc
// @Summary Update a bulletin post
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body NewsInput true "Post content"
// @Success 200 {object} News
// @Failure 404 {object} utils.ErrorResponse
// @Router /news/{id} [put]
// @Security Bearer
func (nc *NewsController) UpdateNews(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid news ID")
		return
	}

	var input NewsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	n, err := nc.repo.GetNewsByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNewsNotFound) {
			utils.NotFoundJSON(ctx, "news")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	n.Title = input.Title
	n.Content = input.Content
	n.IsPinned = input.IsPinned

	if err := nc.repo.UpdateNews(n); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, n)
}

// DeleteNews godoc
// @Summary Delete a bulletin post
// @Tags news
// @Param id path int true "News ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /news/{id} [delete]
// @Security Bearer
func (nc *NewsController) DeleteNews(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid news ID")
		return
	}

	if err := nc.repo.DeleteNews(uint(id)); err != nil {
		if errors.Is(err, ErrNewsNotFound) {
			utils.NotFoundJSON(ctx, "news")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
