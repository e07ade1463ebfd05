package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetHandler_Set(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// the upsert must ride the composite unique key, not plain INSERT
	mock.ExpectExec("INSERT INTO `budgets` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/budgets", NewBudgetHandler().Set)

	body := `{"amount":500.00,"month":6,"year":2025}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "budget set successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "500.00", data["budget_amount"])
	assert.Equal(t, float64(6), data["month"])
	assert.Equal(t, float64(2025), data["year"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Set_SecondCallUpdatesInPlace(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/budgets", NewBudgetHandler().Set)

	// both calls produce the same upsert statement; the second touches the
	// existing row instead of inserting a duplicate
	for _, amount := range []string{"500.00", "650.00"} {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `budgets` .*ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectCommit()

		body := fmt.Sprintf(`{"amount":%s,"month":6,"year":2025}`, amount)
		req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, amount, data["budget_amount"])
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Set_MissingFields(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/budgets", NewBudgetHandler().Set)

	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(`{"amount":500.00}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "month is required")
	assert.Contains(t, w.Body.String(), "year is required")
}

func TestBudgetHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(1, 6, 2025).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "month", "year", "created_at", "updated_at"}).
			AddRow(1, 1, "500.00", 6, 2025, time.Now(), time.Now()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/budgets", NewBudgetHandler().Get)

	req := httptest.NewRequest("GET", "/budgets?month=6&year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "500.00", data["amount"])
	assert.Equal(t, float64(6), data["month"])
	assert.Equal(t, float64(2025), data["year"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Get_NotSet(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/budgets", NewBudgetHandler().Get)

	req := httptest.NewRequest("GET", "/budgets?month=1&year=2030", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "no budget set")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Get_BadMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/budgets", NewBudgetHandler().Get)

	req := httptest.NewRequest("GET", "/budgets?month=13", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "month must be an integer between 1 and 12")
}
