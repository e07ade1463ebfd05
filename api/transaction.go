package api

import (
	"sort"
	"time"

	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler serves the merged income/expense view.
type TransactionHandler struct{}

func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// Transaction is the common projection of an income or expense record.
type Transaction struct {
	ID       uint            `json:"id"`
	Type     string          `json:"type"` // "income" or "expense"
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// mergeTransactions projects both ledgers into the common shape and sorts by
// date descending. The sort is stable, ties keep income-before-expense
// insertion order.
func mergeTransactions(incomes []models.Income, expenses []models.Expense) []Transaction {
	merged := make([]Transaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		merged = append(merged, Transaction{
			ID:       in.ID,
			Type:     "income",
			Amount:   in.Amount,
			Category: in.Category.Name,
			Date:     in.Date,
		})
	}
	for _, ex := range expenses {
		merged = append(merged, Transaction{
			ID:       ex.ID,
			Type:     "expense",
			Amount:   ex.Amount,
			Category: ex.Category.Name,
			Date:     ex.Date,
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}

// List returns the merged transaction history
// @Summary List transactions
// @Description All incomes and expenses of the current user in one
// @Description chronologically descending list. No pagination.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]Transaction} "transactions"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var incomes []models.Income
	if err := database.DB.Preload("Category").
		Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing incomes failed"))
		return
	}

	var expenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing expenses failed"))
		return
	}

	Success(c, mergeTransactions(incomes, expenses))
}
