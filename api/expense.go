package api

import (
	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense ledger. Request and filter shapes are
// shared with the income ledger.
type ExpenseHandler struct{}

func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// List returns the user's expenses
// @Summary List expenses
// @Description Expenses owned by the current user, narrowed by any subset of
// @Description the exact-match filters category_id, amount and date.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "exact category id"
// @Param amount query string false "exact amount, e.g. 300.00"
// @Param date query string false "exact date (2006-01-02)"
// @Success 200 {object} Response{data=[]models.Expense} "expenses"
// @Failure 400 {object} Response "malformed filter"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req LedgerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	query := database.DB.Model(&models.Expense{}).Where("user_id = ?", userID)
	query, ok := applyLedgerFilters(c, query, req)
	if !ok {
		return
	}

	list := make([]models.Expense, 0)
	if err := query.Order("date DESC, id DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing expenses failed"))
		return
	}
	Success(c, list)
}

// Create records a new expense
// @Summary Create expense
// @Description Record an expense against an existing category. The date is
// @Description set to the server's current date.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLedgerRequest true "expense"
// @Success 201 {object} Response{data=models.Expense} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "category not found"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, req.CategoryID).Error; err != nil {
		NotFound(c, "category not found")
		return
	}

	ex := models.Expense{
		UserID:     userID,
		CategoryID: cat.ID,
		Amount:     req.Amount,
		Date:       today(),
	}
	if err := database.DB.Create(&ex).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating expense failed"))
		return
	}
	Created(c, ex)
}
