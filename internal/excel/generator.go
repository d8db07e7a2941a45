package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/arvelin/fieldflow/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.OperationsReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	ordersSheet := "Work Orders"
	file.NewSheet(ordersSheet)
	if err := g.writeOrders(file, ordersSheet, report.WorkOrders); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.OperationsReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Generated")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "Total work orders")
	set("B2", report.Stats.WorkOrders.Total)
	set("A3", "Total quotes")
	set("B3", report.Stats.Quotes.Total)

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Count")

	counts := report.Stats.WorkOrders
	statusRows := []struct {
		label string
		count int
	}{
		{"Available", counts.Available},
		{"Taken", counts.Taken},
		{"Started", counts.Started},
		{"Paused", counts.Paused},
		{"Completed", counts.Completed},
		{"Invoiced", counts.Invoiced},
	}
	for i, row := range statusRows {
		set(fmt.Sprintf("A%d", tableRow+1+i), row.label)
		set(fmt.Sprintf("B%d", tableRow+1+i), row.count)
	}

	revenueRow := tableRow + len(statusRows) + 2
	set(fmt.Sprintf("A%d", revenueRow), "Revenue")
	set(fmt.Sprintf("B%d", revenueRow), "Amount")

	revenue := report.Stats.Revenue
	revenueRows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"This month", revenue.ThisMonth},
		{"Last month", revenue.LastMonth},
		{"This year", revenue.ThisYear},
		{"Pending invoicing", revenue.Pending},
	}
	for i, row := range revenueRows {
		set(fmt.Sprintf("A%d", revenueRow+1+i), row.label)
		set(fmt.Sprintf("B%d", revenueRow+1+i), formatAmount(row.amount))
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeOrders(file *excelize.File, sheet string, orders []model.WorkOrder) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Order number",
		"Title",
		"Customer",
		"Status",
		"Priority",
		"Assigned to",
		"Scheduled",
		"Material cost",
		"Labor cost",
		"Travel cost",
		"Total amount",
		"Invoiced",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, order := range orders {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), order.OrderNumber)
		set(fmt.Sprintf("B%d", row), order.Title)
		set(fmt.Sprintf("C%d", row), order.Customer.Name)
		set(fmt.Sprintf("D%d", row), string(order.Status))
		set(fmt.Sprintf("E%d", row), string(order.Priority))
		set(fmt.Sprintf("F%d", row), formatAssignee(order))
		set(fmt.Sprintf("G%d", row), formatDatePtr(order.ScheduledDate))
		set(fmt.Sprintf("H%d", row), formatAmount(order.MaterialCost))
		set(fmt.Sprintf("I%d", row), formatAmount(order.LaborCost))
		set(fmt.Sprintf("J%d", row), formatAmount(order.TravelCost))
		set(fmt.Sprintf("K%d", row), formatAmount(order.TotalAmount))
		set(fmt.Sprintf("L%d", row), formatBool(order.IsInvoiced))
	}

	_ = file.SetColWidth(sheet, "A", "A", 16)
	_ = file.SetColWidth(sheet, "B", "C", 32)
	_ = file.SetColWidth(sheet, "D", "G", 14)
	_ = file.SetColWidth(sheet, "H", "K", 14)
	_ = file.SetColWidth(sheet, "L", "L", 10)
	return nil
}

func formatAssignee(order model.WorkOrder) string {
	if order.AssignedUser != nil {
		return order.AssignedUser.FullName()
	}
	if order.AssignedTo != nil {
		return *order.AssignedTo
	}
	return ""
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatDatePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
