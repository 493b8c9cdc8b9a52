package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyAttendanceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "student_id", "class_id", "date", "status", "remarks"})
}

func TestAttendanceHandler_MarkBulk(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// the whole class is marked in one transaction
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `attendances`").WillReturnRows(emptyAttendanceRows())
	mock.ExpectExec("INSERT INTO `attendances`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT .* FROM `attendances`").WillReturnRows(emptyAttendanceRows())
	mock.ExpectExec("INSERT INTO `attendances`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/attendance/bulk", NewAttendanceHandler().MarkBulk)

	body := `{"class_id":1,"date":"2024-01-15","records":[` +
		`{"student_id":1,"status":"Present"},` +
		`{"student_id":2,"status":"Absent","remarks":"sick leave"}]}`
	req := httptest.NewRequest("POST", "/attendance/bulk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "attendance marked", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceHandler_MarkBulk_FailureRollsBackEarlierMarks(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// a failing record rolls back marks already written for the class,
	// so a 500 never leaves the register half marked
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `attendances`").WillReturnRows(emptyAttendanceRows())
	mock.ExpectExec("INSERT INTO `attendances`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT .* FROM `attendances`").WillReturnRows(emptyAttendanceRows())
	mock.ExpectExec("INSERT INTO `attendances`").WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/attendance/bulk", NewAttendanceHandler().MarkBulk)

	body := `{"class_id":1,"date":"2024-01-15","records":[` +
		`{"student_id":1,"status":"Present"},` +
		`{"student_id":2,"status":"Present"}]}`
	req := httptest.NewRequest("POST", "/attendance/bulk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
