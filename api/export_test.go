package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

func TestParseDateRange(t *testing.T) {
	c, _ := rangeContext(t, "/export?start_date=2024-01-01&end_date=2024-01-31")

	start, end, startStr, endStr, ok := parseDateRange(c)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", startStr)
	assert.Equal(t, "2024-01-31", endStr)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), start)
	// exclusive upper bound: midnight after the end day, so every
	// timestamp on the final day stays in range, its last second included
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), end)
	lastMoment := time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.Local)
	assert.True(t, lastMoment.Before(end))
}

func TestParseDateRange_Missing(t *testing.T) {
	c, w := rangeContext(t, "/export?start_date=2024-01-01")

	_, _, _, _, ok := parseDateRange(c)
	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
}

func TestParseDateRange_BadFormat(t *testing.T) {
	c, w := rangeContext(t, "/export?start_date=01-01-2024&end_date=2024-01-31")

	_, _, _, _, ok := parseDateRange(c)
	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
}
