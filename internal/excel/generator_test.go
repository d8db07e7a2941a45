package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
)

func TestGenerateProducesWorkbook(t *testing.T) {
	report := model.OperationsReport{
		GeneratedAt: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
		Stats: model.DashboardStats{
			WorkOrders: model.WorkOrderCounts{Available: 1, Completed: 2, Total: 3},
			Quotes:     model.QuoteCounts{Draft: 1, Total: 1},
			Revenue: model.RevenueBuckets{
				ThisMonth: decimal.NewFromInt(12500),
				LastMonth: decimal.NewFromInt(8000),
				ThisYear:  decimal.NewFromInt(20500),
				Pending:   decimal.NewFromInt(4400),
			},
		},
		WorkOrders: []model.WorkOrder{
			{
				OrderNumber: "WO-2025-001",
				Title:       "Replace entry lock",
				Status:      model.WorkOrderStatusCompleted,
				Priority:    model.PriorityHigh,
				Customer:    model.Customer{Name: "Nordic Fastigheter AB"},
				TotalAmount: decimal.NewFromInt(4400),
			},
			{
				OrderNumber: "WO-2025-002",
				Title:       "Camera installation",
				Status:      model.WorkOrderStatusAvailable,
				Priority:    model.PriorityMedium,
				Customer:    model.Customer{Name: "Karin Svensson"},
			},
		},
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("expected workbook content")
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(content, []byte("PK")) {
		t.Fatalf("expected zip container, got %q", content[:2])
	}
}

func TestGenerateEmptyReport(t *testing.T) {
	content, err := NewGenerator().Generate(model.OperationsReport{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("expected workbook content for empty report")
	}
}
