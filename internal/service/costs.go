package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
)

var hundred = decimal.NewFromInt(100)

// recomputeWorkOrderCosts rebuilds the three cost buckets and the total from
// the owned line collections. TotalAmount is always the sum of the buckets;
// a total seeded from a converted quote survives only until the first line
// mutation.
func recomputeWorkOrderCosts(wo *model.WorkOrder) {
	materialCost := decimal.Zero
	for i := range wo.Materials {
		line := &wo.Materials[i]
		line.TotalPrice = line.Quantity.Mul(line.UnitPrice)
		materialCost = materialCost.Add(line.TotalPrice)
	}

	laborCost := decimal.Zero
	actualMinutes := 0
	for i := range wo.TimeEntries {
		laborCost = laborCost.Add(wo.TimeEntries[i].TotalCost)
		actualMinutes += wo.TimeEntries[i].TotalMinutes
	}

	travelCost := decimal.Zero
	for i := range wo.Travels {
		travelCost = travelCost.Add(wo.Travels[i].Cost)
	}

	wo.MaterialCost = materialCost
	wo.LaborCost = laborCost
	wo.TravelCost = travelCost
	wo.TotalAmount = materialCost.Add(laborCost).Add(travelCost)
	wo.ActualHours = decimal.NewFromInt(int64(actualMinutes)).Div(decimal.NewFromInt(60))
}

// recomputeQuoteTotals rebuilds item totals and the subtotal/discount/VAT
// chain. Per-line discounts apply before the quote-level discount; VAT is
// charged on the discounted subtotal. Intermediate sums are not rounded.
func recomputeQuoteTotals(q *model.Quote) {
	subtotal := decimal.Zero
	for i := range q.Items {
		item := &q.Items[i]
		gross := item.Quantity.Mul(item.UnitPrice)
		item.TotalPrice = gross.Sub(gross.Mul(item.DiscountPercent).Div(hundred))
		subtotal = subtotal.Add(item.TotalPrice)
	}

	q.Subtotal = subtotal
	q.DiscountAmount = subtotal.Mul(q.DiscountPercent).Div(hundred)
	taxable := subtotal.Sub(q.DiscountAmount)
	q.VATAmount = taxable.Mul(q.VATPercent).Div(hundred)
	q.TotalAmount = taxable.Add(q.VATAmount)
}

// deriveTimeEntry fills the computed fields of a time entry. Non-billable
// time keeps its minutes for actual-hours tracking but costs nothing.
func deriveTimeEntry(te *model.TimeEntry) {
	if te.EndTime != nil {
		minutes := int(te.EndTime.Sub(te.StartTime) / time.Minute)
		minutes -= te.BreakMinutes
		if minutes < 0 {
			minutes = 0
		}
		te.TotalMinutes = minutes
	}
	if te.IsBillable {
		te.TotalCost = decimal.NewFromInt(int64(te.TotalMinutes)).
			Div(decimal.NewFromInt(60)).
			Mul(te.HourlyRate)
	} else {
		te.TotalCost = decimal.Zero
	}
}
