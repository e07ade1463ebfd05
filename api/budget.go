package api

import (
	"strconv"
	"time"

	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// BudgetHandler serves the per-month budget allocations.
type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// SetBudgetRequest is the budget upsert payload. All fields are required.
type SetBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required" example:"500.00"`
	Month  int             `json:"month" binding:"required,min=1,max=12" example:"6"`
	Year   int             `json:"year" binding:"required,min=1970" example:"2025"`
}

// BudgetResponse reports one budget allocation.
type BudgetResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
}

// SetBudgetResponse confirms an upsert.
type SetBudgetResponse struct {
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

// resolvePeriod reads optional month/year query params, defaulting both to
// the server's current month and year.
func resolvePeriod(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			BadRequest(c, "month must be an integer between 1 and 12")
			return 0, 0, false
		}
		month = m
	}
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			BadRequest(c, "year must be a positive integer")
			return 0, 0, false
		}
		year = y
	}
	return month, year, true
}

// Get returns the budget for one period
// @Summary Get budget
// @Description The budget for (user, month, year). Month and year default to
// @Description the server's current month and year.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param month query int false "month 1-12, defaults to current"
// @Param year query int false "year, defaults to current"
// @Success 200 {object} Response{data=BudgetResponse} "budget"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "no budget set"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	month, year, ok := resolvePeriod(c)
	if !ok {
		return
	}

	var budget models.Budget
	if err := database.DB.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error; err != nil {
		NotFound(c, "no budget set for this user in this month/year")
		return
	}

	Success(c, BudgetResponse{Amount: budget.Amount, Month: budget.Month, Year: budget.Year})
}

// Set upserts the budget for one period
// @Summary Set budget
// @Description Upsert the budget keyed on (user, month, year). An existing
// @Description row is updated in place; the write is atomic on the composite
// @Description unique key.
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetBudgetRequest true "budget"
// @Success 200 {object} Response{data=SetBudgetResponse} "budget set"
// @Failure 400 {object} Response "missing amount, month or year"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Set(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	budget := models.Budget{
		UserID: userID,
		Amount: req.Amount,
		Month:  req.Month,
		Year:   req.Year,
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "setting budget failed"))
		return
	}

	SuccessWithMessage(c, "budget set successfully", SetBudgetResponse{
		BudgetAmount: budget.Amount,
		Month:        budget.Month,
		Year:         budget.Year,
	})
}
