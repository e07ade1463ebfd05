package api

import (
	"time"

	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeHandler serves the income ledger.
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// CreateLedgerRequest is the payload for income and expense creation. The
// record date always comes from the server clock, never from the client.
type CreateLedgerRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required" example:"1000.00"`
	CategoryID uint            `json:"category_id" binding:"required" example:"1"`
}

// LedgerListRequest holds the optional equality filters for ledger queries.
// All supplied filters are combined with AND.
type LedgerListRequest struct {
	CategoryID string `form:"category_id" example:"1"`
	Amount     string `form:"amount" example:"1000.00"`
	Date       string `form:"date" example:"2025-06-15"`
}

// applyLedgerFilters narrows a ledger query by the optional exact-match
// filters. Malformed filter values are reported back as 400s.
func applyLedgerFilters(c *gin.Context, query *gorm.DB, req LedgerListRequest) (*gorm.DB, bool) {
	if req.CategoryID != "" {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			BadRequest(c, "amount filter must be a decimal number")
			return nil, false
		}
		query = query.Where("amount = ?", amount)
	}
	if req.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date filter must be formatted as 2006-01-02")
			return nil, false
		}
		query = query.Where("date = ?", t)
	}
	return query, true
}

// today returns the server-clock date at local midnight.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// List returns the user's incomes
// @Summary List incomes
// @Description Incomes owned by the current user, narrowed by any subset of
// @Description the exact-match filters category_id, amount and date.
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "exact category id"
// @Param amount query string false "exact amount, e.g. 1000.00"
// @Param date query string false "exact date (2006-01-02)"
// @Success 200 {object} Response{data=[]models.Income} "incomes"
// @Failure 400 {object} Response "malformed filter"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req LedgerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	query := database.DB.Model(&models.Income{}).Where("user_id = ?", userID)
	query, ok := applyLedgerFilters(c, query, req)
	if !ok {
		return
	}

	list := make([]models.Income, 0)
	if err := query.Order("date DESC, id DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing incomes failed"))
		return
	}
	Success(c, list)
}

// Create records a new income
// @Summary Create income
// @Description Record an income against an existing category. The date is
// @Description set to the server's current date.
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLedgerRequest true "income"
// @Success 201 {object} Response{data=models.Income} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "category not found"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
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

	in := models.Income{
		UserID:     userID,
		CategoryID: cat.ID,
		Amount:     req.Amount,
		Date:       today(),
	}
	if err := database.DB.Create(&in).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating income failed"))
		return
	}
	Created(c, in)
}
