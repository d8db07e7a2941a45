package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

func TestDashboardStatusCounts(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	ctx := context.Background()

	createWorkOrder(t, svc, customer.ID)

	taken := createWorkOrder(t, svc, customer.ID)
	if _, err := svc.AssignWorkOrder(ctx, taken.ID, &user.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	completed := createWorkOrder(t, svc, customer.ID)
	if _, err := svc.AssignWorkOrder(ctx, completed.ID, &user.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	for _, status := range []string{"started", "completed"} {
		if _, err := svc.UpdateWorkOrderStatus(ctx, completed.ID, status); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	stats, err := svc.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	counts := stats.WorkOrders
	if counts.Available != 1 || counts.Taken != 1 || counts.Completed != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if counts.Total != 3 {
		t.Fatalf("expected total 3 got %d", counts.Total)
	}
	// Completed orders stay out of the upcoming list.
	if len(stats.UpcomingWorkOrders) != 2 {
		t.Fatalf("expected 2 upcoming got %d", len(stats.UpcomingWorkOrders))
	}
}

func seedInvoicedOrder(t *testing.T, store repository.Store, customer model.Customer, id string, invoiceDate time.Time, amount decimal.Decimal) model.WorkOrder {
	t.Helper()

	wo := model.WorkOrder{
		ID:          id,
		OrderNumber: "WO-" + id,
		Title:       "Invoiced " + id,
		Status:      model.WorkOrderStatusInvoiced,
		CustomerID:  customer.ID,
		Customer:    customer,
		TotalAmount: amount,
		IsInvoiced:  true,
		InvoiceDate: &invoiceDate,
		CreatedAt:   invoiceDate,
		UpdatedAt:   invoiceDate,
	}
	if err := store.WorkOrders().Create(context.Background(), &wo); err != nil {
		t.Fatalf("seed invoiced order: %v", err)
	}
	return wo
}

func TestDashboardRevenueBuckets(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	// Invoiced this month, last month, and earlier this year.
	seedInvoicedOrder(t, store, customer, "wo-cur", testNow, decimal.NewFromInt(1000))
	seedInvoicedOrder(t, store, customer, "wo-prev", testNow.AddDate(0, -1, 0), decimal.NewFromInt(700))
	seedInvoicedOrder(t, store, customer, "wo-jan", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(300))

	// Completed but not yet invoiced.
	pending := model.WorkOrder{
		ID:          "wo-pending",
		OrderNumber: "WO-2025-900",
		Title:       "Pending",
		Status:      model.WorkOrderStatusCompleted,
		CustomerID:  customer.ID,
		Customer:    customer,
		TotalAmount: decimal.NewFromInt(500),
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	if err := store.WorkOrders().Create(ctx, &pending); err != nil {
		t.Fatalf("seed pending: %v", err)
	}

	stats, err := svc.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	revenue := stats.Revenue
	if !revenue.ThisMonth.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected this month 1000 got %s", revenue.ThisMonth)
	}
	if !revenue.LastMonth.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected last month 700 got %s", revenue.LastMonth)
	}
	if !revenue.ThisYear.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected this year 2000 got %s", revenue.ThisYear)
	}
	if !revenue.Pending.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected pending 500 got %s", revenue.Pending)
	}
}

func TestDashboardRecentSlices(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	var last *model.WorkOrder
	for i := 0; i < 7; i++ {
		last = createWorkOrder(t, svc, customer.ID)
	}
	for i := 0; i < 4; i++ {
		createQuote(t, svc, customer.ID, nil)
	}

	stats, err := svc.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if len(stats.RecentWorkOrders) != 5 {
		t.Fatalf("expected 5 recent work orders got %d", len(stats.RecentWorkOrders))
	}
	// Newest first.
	if stats.RecentWorkOrders[0].ID != last.ID {
		t.Fatalf("expected newest order first, got %s", stats.RecentWorkOrders[0].ID)
	}
	if len(stats.RecentQuotes) != 3 {
		t.Fatalf("expected 3 recent quotes got %d", len(stats.RecentQuotes))
	}
}
