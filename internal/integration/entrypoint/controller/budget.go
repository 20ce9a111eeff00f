// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/budget"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget period endpoints.
type BudgetController struct {
	getMonthUseCase    *budget.GetMonthUseCase
	assignMoneyUseCase *budget.AssignMoneyUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getMonthUseCase *budget.GetMonthUseCase,
	assignMoneyUseCase *budget.AssignMoneyUseCase,
) *BudgetController {
	return &BudgetController{
		getMonthUseCase:    getMonthUseCase,
		assignMoneyUseCase: assignMoneyUseCase,
	}
}

// GetMonth handles GET /budget/:month requests.
func (c *BudgetController) GetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.GetMonthInput{
		UserID: userID,
		Month:  ctx.Param("month"),
	}

	output, err := c.getMonthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthBudgetResponse(output))
}

// AssignMoney handles POST /budget/:month/assign requests.
func (c *BudgetController) AssignMoney(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AssignMoneyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAssignmentAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	input := budget.AssignMoneyInput{
		UserID:     userID,
		Month:      ctx.Param("month"),
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
	}

	output, err := c.assignMoneyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssignMoneyResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Assignments resolve categories, so category errors surface here too.
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetPeriodNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAssignmentAmount,
		domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
