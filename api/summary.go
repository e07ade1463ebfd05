package api

import (
	"time"

	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SummaryHandler serves the derived monthly budget report.
type SummaryHandler struct{}

func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// BudgetSummaryResponse is the derived report for one budget period.
type BudgetSummaryResponse struct {
	BudgetAmount     decimal.Decimal `json:"budget_amount" example:"500.00"`
	TotalIncome      decimal.Decimal `json:"total_income" example:"1000.00"`
	TotalExpense     decimal.Decimal `json:"total_expense" example:"300.00"`
	Balance          decimal.Decimal `json:"balance" example:"700.00"`
	BudgetDifference decimal.Decimal `json:"budget_difference" example:"200.00"`
}

// periodRange returns [start, end) covering the given month.
func periodRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// Summarize computes the budget report for one period
// @Summary Budget summary
// @Description Budget amount, income and expense totals, balance and budget
// @Description difference for (user, month, year). Month and year default to
// @Description the server's current month and year. Read-only.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param month query int false "month 1-12, defaults to current"
// @Param year query int false "year, defaults to current"
// @Success 200 {object} Response{data=BudgetSummaryResponse} "summary"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "no budget set"
// @Router /api/v1/budget-summary [get]
func (h *SummaryHandler) Summarize(c *gin.Context) {
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

	start, end := periodRange(month, year)

	// COALESCE keeps empty periods at 0 instead of NULL.
	var totalIncome decimal.Decimal
	if err := database.DB.Model(&models.Income{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalIncome).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "summing incomes failed"))
		return
	}

	var totalExpense decimal.Decimal
	if err := database.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "summing expenses failed"))
		return
	}

	Success(c, BudgetSummaryResponse{
		BudgetAmount:     budget.Amount,
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		BudgetDifference: budget.Amount.Sub(totalExpense),
	})
}
