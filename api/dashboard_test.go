package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"schoolms/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Chart(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}).AddRow(6, 8000.0))
	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}).AddRow(6, 5000.0))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/dashboard/chart", NewDashboardHandler().Chart)

	req := httptest.NewRequest("GET", "/dashboard/chart?year=2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	series := resp["data"].([]interface{})
	require.Len(t, series, 12)

	june := series[5].(map[string]interface{})
	assert.Equal(t, "June", june["month"])
	assert.Equal(t, 8000.0, june["income"])
	assert.Equal(t, 5000.0, june["expense"])
	assert.Equal(t, 3000.0, june["balance"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_Chart_BadYear(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/dashboard/chart", NewDashboardHandler().Chart)

	req := httptest.NewRequest("GET", "/dashboard/chart?year=banana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
