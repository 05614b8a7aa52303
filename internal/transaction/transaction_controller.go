package transaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/pkg/utils"
	"github.com/pcmclub/pcm-api/pkg/validator"
)

// TransactionController handles treasury HTTP requests
type TransactionController struct {
	repo      TransactionRepository
	members   member.MemberRepository
	appConfig *config.Config
}

func NewTransactionController(repo TransactionRepository, members member.MemberRepository, appConfig *config.Config) *TransactionController {
	return &TransactionController{repo: repo, members: members, appConfig: appConfig}
}

// GetAllTransactions godoc
// @Summary List all transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} TransactionView
// @Router /transactions [get]
func (tc *TransactionController) GetAllTransactions(ctx *gin.Context) {
	views, err := tc.repo.GetAllTransactions()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// CreateTransaction godoc
// @Summary Record a treasury transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionInput true "Transaction details"
// @Success 201 {object} TransactionView
// @Failure 400 {object} utils.ErrorResponse
// @Router /transactions [post]
// @Security Bearer
func (tc *TransactionController) CreateTransaction(ctx *gin.Context) {
	var input TransactionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	m, err := tc.members.GetMemberByUserID(userID)
	if err != nil {
		utils.BadRequestJSON(ctx, "no member profile for current user")
		return
	}

	if _, err := tc.repo.GetCategoryByID(input.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			utils.BadRequestJSON(ctx, "unknown transaction category")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	t := &Transaction{
		Date:        input.Date,
		Amount:      input.Amount,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		CreatedBy:   m.ID,
		Status:      StatusPending,
	}

	if err := tc.repo.CreateTransaction(t); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	view, err := tc.repo.GetTransactionByID(t.ID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}

// ApproveTransaction godoc
// @Summary Approve a pending transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse "Already decided"
// @Router /transactions/{id}/approve [put]
// @Security Bearer
func (tc *TransactionController) ApproveTransaction(ctx *gin.Context) {
	tc.decideTransaction(ctx, StatusApproved, "Approved")
}

// RejectTransaction godoc
// @Summary Reject a pending transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse "Already decided"
// @Router /transactions/{id}/reject [put]
// @Security Bearer
func (tc *TransactionController) RejectTransaction(ctx *gin.Context) {
	tc.decideTransaction(ctx, StatusRejected, "Rejected")
}

func (tc *TransactionController) decideTransaction(ctx *gin.Context, status, message string) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid transaction ID")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	err = tc.repo.DecideTransaction(uint(id), status, userID, tc.appConfig.Treasury.AllowRedecide)
	if err != nil {
		switch {
		case errors.Is(err, ErrTransactionNotFound):
			utils.NotFoundJSON(ctx, "transaction")
		case errors.Is(err, ErrAlreadyDecided):
			utils.ConflictJSON(ctx, "Transaction has already been decided")
		default:
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	utils.SuccessJSON(ctx, http.StatusOK, message, nil)
}

// GetSummary godoc
// @Summary Treasury summary
// @Tags transactions
// @Produce json
// @Success 200 {object} Summary
// @Router /transactions/summary [get]
func (tc *TransactionController) GetSummary(ctx *gin.Context) {
	summary, err := tc.repo.GetSummary()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetAllCategories godoc
// @Summary List transaction categories
// @Tags transaction-categories
// @Produce json
// @Success 200 {array} TransactionCategory
// @Router /transaction-categories [get]
func (tc *TransactionController) GetAllCategories(ctx *gin.Context) {
	categories, err := tc.repo.GetAllCategories()
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create a transaction category
// @Tags transaction-categories
// @Accept json
// @Produce json
// @Param category body CategoryInput true "Category details"
// @Success 201 {object} TransactionCategory
// @Failure 400 {object} utils.ErrorResponse
// @Router /transaction-categories [post]
// @Security Bearer
func (tc *TransactionController) CreateCategory(ctx *gin.Context) {
	var input CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	c := &TransactionCategory{Name: input.Name, Type: input.Type}
	if err := tc.repo.CreateCategory(c); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, c)
}

// UpdateCategory godoc
// @Summary Update a transaction category
// @Tags transaction-categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryInput true "Category details"
// @Success 200 {object} TransactionCategory
// @Failure 404 {object} utils.ErrorResponse
// @Router /transaction-categories/{id} [put]
// @Security Bearer
func (tc *TransactionController) UpdateCategory(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid category ID")
		return
	}

	var input CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	c, err := tc.repo.GetCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			utils.NotFoundJSON(ctx, "category")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	c.Name = input.Name
	c.Type = input.Type
	if err := tc.repo.UpdateCategory(c); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c)
}

// DeleteCategory godoc
// @Summary Delete a transaction category
// @Tags transaction-categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /transaction-categories/{id} [delete]
// @Security Bearer
func (tc *TransactionController) DeleteCategory(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid category ID")
		return
	}

	if err := tc.repo.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			utils.NotFoundJSON(ctx, "category")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
