package api

import (
	"strconv"
	"time"

	"schoolms/database"
	"schoolms/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler dashboard aggregate endpoints
type DashboardHandler struct{}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Stats returns the dashboard headline numbers
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.DashboardStats} "ok"
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	reports := service.NewReportService(database.DB)
	stats, err := reports.Stats(time.Now())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to collect statistics"))
		return
	}
	Success(c, stats)
}

// Chart returns the 12-month income/expense series for a year
// @Summary Monthly income/expense chart
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param year query int false "year, defaults to current"
// @Success 200 {object} Response{data=[]service.MonthSeriesEntry} "ok"
// @Router /api/v1/dashboard/chart [get]
func (h *DashboardHandler) Chart(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 2000 || parsed > 2100 {
			BadRequest(c, "year must be a four digit number")
			return
		}
		year = parsed
	}
	reports := service.NewReportService(database.DB)
	series, err := reports.MonthlySeries(year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to build chart"))
		return
	}
	Success(c, series)
}
