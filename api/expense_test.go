package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, "Rent", time.Now(), time.Now(), nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":300.00,"category_id":2}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "300.00", data["amount"])
	assert.Equal(t, float64(2), data["category_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_NoFilters(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "date", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 1, 2, "300.00", date, time.Now(), time.Now(), nil).
			AddRow(1, 1, 2, "42.50", date.AddDate(0, 0, -3), time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/expenses", NewExpenseHandler().List)

	req := httptest.NewRequest("GET", "/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "300.00", first["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_CategoryNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":10.00,"category_id":42}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
