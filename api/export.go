package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports the merged transaction history.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRange reads optional start_date/end_date query params (2006-01-02).
// Zero times mean unbounded.
func exportRange(c *gin.Context) (time.Time, time.Time, bool) {
	var start, end time.Time
	if s := c.Query("start_date"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			BadRequest(c, "start_date must be formatted as 2006-01-02")
			return start, end, false
		}
		start = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			BadRequest(c, "end_date must be formatted as 2006-01-02")
			return start, end, false
		}
		end = t
	}
	return start, end, true
}

func (h *ExportHandler) fetchTransactions(c *gin.Context) ([]Transaction, bool) {
	userID := middleware.GetCurrentUserID(c)
	start, end, ok := exportRange(c)
	if !ok {
		return nil, false
	}

	incomeQ := database.DB.Preload("Category").Where("user_id = ?", userID)
	expenseQ := database.DB.Preload("Category").Where("user_id = ?", userID)
	if !start.IsZero() {
		incomeQ = incomeQ.Where("date >= ?", start)
		expenseQ = expenseQ.Where("date >= ?", start)
	}
	if !end.IsZero() {
		incomeQ = incomeQ.Where("date <= ?", end)
		expenseQ = expenseQ.Where("date <= ?", end)
	}

	var incomes []models.Income
	if err := incomeQ.Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "querying incomes failed"))
		return nil, false
	}
	var expenses []models.Expense
	if err := expenseQ.Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "querying expenses failed"))
		return nil, false
	}

	return mergeTransactions(incomes, expenses), true
}

// ExportCSV exports transactions as CSV
// @Summary Export transactions as CSV
// @Description Merged transaction history as a CSV download, optionally
// @Description bounded by start_date/end_date.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "start date (2006-01-02)"
// @Param end_date query string false "end date (2006-01-02)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "malformed date"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	transactions, ok := h.fetchTransactions(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel detects UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"ID", "Type", "Amount", "Category", "Date"}); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}
	for _, tx := range transactions {
		record := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Type,
			tx.Amount.StringFixed(2),
			tx.Category,
			tx.Date.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "writing CSV failed")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel exports transactions as an Excel workbook
// @Summary Export transactions as Excel
// @Description Merged transaction history as an .xlsx download, optionally
// @Description bounded by start_date/end_date.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string false "start date (2006-01-02)"
// @Param end_date query string false "end date (2006-01-02)"
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} Response "malformed date"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	transactions, ok := h.fetchTransactions(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		InternalError(c, "creating sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Type", "Amount", "Category", "Date"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}
	for row, tx := range transactions {
		values := []interface{}{
			tx.ID,
			tx.Type,
			tx.Amount.InexactFloat64(),
			tx.Category,
			tx.Date.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "writing workbook failed")
		return
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
