package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
)

func TestDeriveTimeEntry(t *testing.T) {
	start := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(8*time.Hour + 30*time.Minute)

	entry := model.TimeEntry{
		StartTime:    start,
		EndTime:      &end,
		BreakMinutes: 30,
		IsBillable:   true,
		HourlyRate:   decimal.NewFromInt(500),
	}
	deriveTimeEntry(&entry)

	if entry.TotalMinutes != 480 {
		t.Fatalf("expected 480 minutes got %d", entry.TotalMinutes)
	}
	if !entry.TotalCost.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected cost 4000 got %s", entry.TotalCost)
	}
}

func TestDeriveTimeEntryNonBillable(t *testing.T) {
	start := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	entry := model.TimeEntry{
		StartTime:  start,
		EndTime:    &end,
		IsBillable: false,
		HourlyRate: decimal.NewFromInt(500),
	}
	deriveTimeEntry(&entry)

	if entry.TotalMinutes != 120 {
		t.Fatalf("expected minutes tracked for non-billable time, got %d", entry.TotalMinutes)
	}
	if !entry.TotalCost.IsZero() {
		t.Fatalf("expected zero cost for non-billable time, got %s", entry.TotalCost)
	}
}

func TestDeriveTimeEntryOpenEnded(t *testing.T) {
	entry := model.TimeEntry{
		StartTime:  time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC),
		IsBillable: true,
		HourlyRate: decimal.NewFromInt(500),
	}
	deriveTimeEntry(&entry)

	if entry.TotalMinutes != 0 || !entry.TotalCost.IsZero() {
		t.Fatalf("open entry must not accrue, got %d minutes / %s", entry.TotalMinutes, entry.TotalCost)
	}
}

func TestDeriveTimeEntryBreakLongerThanSpan(t *testing.T) {
	start := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(20 * time.Minute)

	entry := model.TimeEntry{
		StartTime:    start,
		EndTime:      &end,
		BreakMinutes: 45,
		IsBillable:   true,
		HourlyRate:   decimal.NewFromInt(500),
	}
	deriveTimeEntry(&entry)

	if entry.TotalMinutes != 0 {
		t.Fatalf("expected minutes clamped to zero, got %d", entry.TotalMinutes)
	}
}

func TestRecomputeWorkOrderCosts(t *testing.T) {
	wo := &model.WorkOrder{
		Materials: []model.WorkOrderMaterial{
			{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(49.90)},
			{Quantity: decimal.NewFromFloat(1.5), UnitPrice: decimal.NewFromInt(200)},
		},
		TimeEntries: []model.TimeEntry{
			{TotalMinutes: 90, TotalCost: decimal.NewFromInt(900)},
			{TotalMinutes: 60, TotalCost: decimal.Zero},
		},
		Travels: []model.Travel{
			{Cost: decimal.NewFromFloat(62.50)},
		},
	}
	recomputeWorkOrderCosts(wo)

	if !wo.MaterialCost.Equal(decimal.NewFromFloat(449.70)) {
		t.Fatalf("expected material cost 449.70 got %s", wo.MaterialCost)
	}
	if !wo.Materials[0].TotalPrice.Equal(decimal.NewFromFloat(149.70)) {
		t.Fatalf("expected line total 149.70 got %s", wo.Materials[0].TotalPrice)
	}
	if !wo.LaborCost.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected labor cost 900 got %s", wo.LaborCost)
	}
	if !wo.TravelCost.Equal(decimal.NewFromFloat(62.50)) {
		t.Fatalf("expected travel cost 62.50 got %s", wo.TravelCost)
	}
	if !wo.TotalAmount.Equal(decimal.NewFromFloat(1412.20)) {
		t.Fatalf("expected total 1412.20 got %s", wo.TotalAmount)
	}
	if !wo.ActualHours.Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("expected actual hours 2.5 got %s", wo.ActualHours)
	}
}

func TestRecomputeQuoteTotalsEmptyQuote(t *testing.T) {
	q := &model.Quote{
		DiscountPercent: decimal.NewFromInt(10),
		VATPercent:      decimal.NewFromInt(25),
	}
	recomputeQuoteTotals(q)

	if !q.Subtotal.IsZero() || !q.TotalAmount.IsZero() {
		t.Fatalf("expected zero totals for empty quote, got %+v", q)
	}
}

func TestWorkOrderTransitionTable(t *testing.T) {
	cases := []struct {
		from, to model.WorkOrderStatus
		allowed  bool
	}{
		{model.WorkOrderStatusAvailable, model.WorkOrderStatusTaken, true},
		{model.WorkOrderStatusAvailable, model.WorkOrderStatusStarted, false},
		{model.WorkOrderStatusTaken, model.WorkOrderStatusAvailable, true},
		{model.WorkOrderStatusTaken, model.WorkOrderStatusStarted, true},
		{model.WorkOrderStatusStarted, model.WorkOrderStatusPaused, true},
		{model.WorkOrderStatusStarted, model.WorkOrderStatusCompleted, true},
		{model.WorkOrderStatusStarted, model.WorkOrderStatusInvoiced, false},
		{model.WorkOrderStatusPaused, model.WorkOrderStatusStarted, true},
		{model.WorkOrderStatusPaused, model.WorkOrderStatusCompleted, false},
		{model.WorkOrderStatusCompleted, model.WorkOrderStatusInvoiced, true},
		{model.WorkOrderStatusInvoiced, model.WorkOrderStatusCompleted, false},
		{model.WorkOrderStatusStarted, model.WorkOrderStatusStarted, true},
	}
	for _, tc := range cases {
		if got := canTransitionWorkOrder(tc.from, tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestQuoteTransitionTable(t *testing.T) {
	cases := []struct {
		from, to model.QuoteStatus
		allowed  bool
	}{
		{model.QuoteStatusDraft, model.QuoteStatusSent, true},
		{model.QuoteStatusDraft, model.QuoteStatusAccepted, false},
		{model.QuoteStatusSent, model.QuoteStatusAccepted, true},
		{model.QuoteStatusSent, model.QuoteStatusRejected, true},
		{model.QuoteStatusSent, model.QuoteStatusRevised, true},
		{model.QuoteStatusRevised, model.QuoteStatusSent, true},
		{model.QuoteStatusRejected, model.QuoteStatusDraft, true},
		{model.QuoteStatusAccepted, model.QuoteStatusSent, false},
		{model.QuoteStatusAccepted, model.QuoteStatusAccepted, true},
	}
	for _, tc := range cases {
		if got := canTransitionQuote(tc.from, tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}
