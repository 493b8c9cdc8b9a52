package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler report export endpoints
type ExportHandler struct{}

// NewExportHandler creates an export handler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// parseDateRange reads the required start_date/end_date query parameters.
// The returned end is the midnight after the end day, for exclusive "< end"
// bounds that keep the whole final day.
func parseDateRange(c *gin.Context) (start, end time.Time, startStr, endStr string, ok bool) {
	startStr = c.Query("start_date")
	endStr = c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "start_date and end_date are required")
		return
	}
	var err error
	start, err = time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "start_date must be formatted as 2006-01-02")
		return
	}
	end, err = time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "end_date must be formatted as 2006-01-02")
		return
	}
	end = end.AddDate(0, 0, 1)
	ok = true
	return
}

// ExportFeesExcel exports fee collections as a styled XLSX workbook
// @Summary Export fee collections to Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string true "start date (2006-01-02)"
// @Param end_date query string true "end date (2006-01-02)"
// @Param status query string false "status filter"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/export/fees/excel [get]
func (h *ExportHandler) ExportFeesExcel(c *gin.Context) {
	start, end, startStr, endStr, ok := parseDateRange(c)
	if !ok {
		return
	}

	query := database.DB.Preload("Student").Preload("Class").
		Where("payment_date >= ? AND payment_date < ?", start, end)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var fees []models.Fee
	if err := query.Order("payment_date DESC").Find(&fees).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Fee Collections"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 14)
	f.SetColWidth(sheetName, "J", "J", 10)
	f.SetColWidth(sheetName, "K", "K", 16)
	f.SetColWidth(sheetName, "L", "L", 16)

	headers := []string{
		"Receipt No", "Admission No", "Student", "Class", "Month",
		"Amount", "Fine", "Discount", "Paid", "Status", "Mode", "Payment Date",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalPaid float64
	for i, fee := range fees {
		row := i + 2
		studentName := ""
		admissionNo := ""
		if fee.Student != nil {
			studentName = fee.Student.FullName()
			admissionNo = fee.Student.AdmissionNo
		}
		className := ""
		if fee.Class != nil {
			className = fee.Class.Name + " " + fee.Class.Section
		}
		paymentDate := ""
		if fee.PaymentDate != nil {
			paymentDate = fee.PaymentDate.Format("2006-01-02")
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fee.ReceiptNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), admissionNo)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), studentName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), className)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("%s %d", fee.Month, fee.Year))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), fee.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), fee.Fine)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), fee.Discount)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), fee.PaidAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), fee.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), fee.PaymentMode)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), paymentDate)

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("L%d", row), dataStyle)
		totalPaid += fee.PaidAmount
	}

	summaryRow := len(fees) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("I%d", summaryRow), totalPaid)
	f.SetCellValue(sheetName, fmt.Sprintf("J%d", summaryRow), fmt.Sprintf("%d records", len(fees)))
	f.MergeCell(sheetName, fmt.Sprintf("J%d", summaryRow), fmt.Sprintf("L%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("L%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("fee_collections_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to generate Excel file")
		return
	}
}

// ExportLedgerCSV exports income and expense entries as CSV
// @Summary Export ledger to CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string true "start date (2006-01-02)"
// @Param end_date query string true "end date (2006-01-02)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/export/ledger/csv [get]
func (h *ExportHandler) ExportLedgerCSV(c *gin.Context) {
	start, end, startStr, endStr, ok := parseDateRange(c)
	if !ok {
		return
	}

	var incomes []models.Income
	if err := database.DB.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	var expenses []models.Expense
	if err := database.DB.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel opens the file as UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"Type", "Title", "Category", "Amount", "Payment Mode", "Date", "Description"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}
	for _, income := range incomes {
		row := []string{
			"Income",
			income.Title,
			income.Category,
			fmt.Sprintf("%.2f", income.Amount),
			income.PaymentMode,
			income.Date.Format("2006-01-02"),
			income.Description,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "failed to generate CSV")
			return
		}
	}
	for _, expense := range expenses {
		row := []string{
			"Expense",
			expense.Title,
			expense.Category,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.PaymentMode,
			expense.Date.Format("2006-01-02"),
			expense.Description,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("ledger_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportLedgerJSON exports income and expense entries with totals as JSON
// @Summary Export ledger to JSON
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "start date (2006-01-02)"
// @Param end_date query string true "end date (2006-01-02)"
// @Success 200 {object} Response "exported"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/export/ledger/json [get]
func (h *ExportHandler) ExportLedgerJSON(c *gin.Context) {
	start, end, startStr, endStr, ok := parseDateRange(c)
	if !ok {
		return
	}

	var incomes []models.Income
	if err := database.DB.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	var expenses []models.Expense
	if err := database.DB.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	var totalIncome, totalExpense float64
	for _, income := range incomes {
		totalIncome += income.Amount
	}
	for _, expense := range expenses {
		totalExpense += expense.Amount
	}

	Success(c, gin.H{
		"start_date":    startStr,
		"end_date":      endStr,
		"total_income":  totalIncome,
		"total_expense": totalExpense,
		"balance":       totalIncome - totalExpense,
		"incomes":       incomes,
		"expenses":      expenses,
	})
}
