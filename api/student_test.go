package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"schoolms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentHandler_NextAdmissionNo(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// the preview endpoint only reads the sequence; calling it twice
	// returns the same number and never issues an UPDATE
	seqRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"name", "value"}).AddRow(models.SequenceAdmission, 6)
	}
	mock.ExpectQuery("SELECT .* FROM `sequences`").WillReturnRows(seqRows())
	mock.ExpectQuery("SELECT .* FROM `sequences`").WillReturnRows(seqRows())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/students/next-admission-no", NewStudentHandler().NextAdmissionNo)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/students/next-admission-no", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "STJ007", data["admission_no"])
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentHandler_Create_AllocatesAdmissionNo(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// creation bumps the sequence and inserts in one transaction
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sequences`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `sequences`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow(models.SequenceAdmission, 7))
	mock.ExpectExec("INSERT INTO `students`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/students", NewStudentHandler().Create)

	body := `{"first_name":"Ravi","last_name":"Kumar","gender":"Male","date_of_birth":"2012-06-01","session":"2024-25"}`
	req := httptest.NewRequest("POST", "/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "student created", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "STJ007", data["admission_no"])
	require.NoError(t, mock.ExpectationsWereMet())
}
