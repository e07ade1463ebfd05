package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectTransactionQueries(mock sqlmock.Sqlmock) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "date", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, 1, "1000.00", date, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Salary", time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "date", "created_at", "updated_at", "deleted_at"}))
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectTransactionQueries(mock)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	// UTF-8 BOM prefix
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "ID,Type,Amount,Category,Date")
	assert.Contains(t, body, "1,income,1000.00,Salary,2025-06-15")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_BadDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_date=June", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "start_date")
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectTransactionQueries(mock)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
	require.NoError(t, mock.ExpectationsWereMet())
}
