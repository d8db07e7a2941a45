package service

import (
	"fmt"

	"github.com/arvelin/fieldflow/internal/model"
)

// workOrderTransitions is the allowed forward edge set of the work-order
// lifecycle. Unassignment is the one move outside this table: clearing the
// assignee always returns the order to "available", whatever its current
// status.
var workOrderTransitions = map[model.WorkOrderStatus][]model.WorkOrderStatus{
	model.WorkOrderStatusAvailable: {model.WorkOrderStatusTaken},
	model.WorkOrderStatusTaken:     {model.WorkOrderStatusAvailable, model.WorkOrderStatusStarted},
	model.WorkOrderStatusStarted:   {model.WorkOrderStatusPaused, model.WorkOrderStatusCompleted},
	model.WorkOrderStatusPaused:    {model.WorkOrderStatusStarted},
	model.WorkOrderStatusCompleted: {model.WorkOrderStatusInvoiced},
	model.WorkOrderStatusInvoiced:  nil,
}

var quoteTransitions = map[model.QuoteStatus][]model.QuoteStatus{
	model.QuoteStatusDraft:    {model.QuoteStatusSent},
	model.QuoteStatusSent:     {model.QuoteStatusAccepted, model.QuoteStatusRejected, model.QuoteStatusRevised},
	model.QuoteStatusRevised:  {model.QuoteStatusSent},
	model.QuoteStatusRejected: {model.QuoteStatusDraft},
	model.QuoteStatusAccepted: nil,
}

// canTransitionWorkOrder reports whether from -> to is allowed. Setting the
// current status again is treated as a no-op and always allowed, which keeps
// repeated "started"/"completed" calls idempotent.
func canTransitionWorkOrder(from, to model.WorkOrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range workOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func canTransitionQuote(from, to model.QuoteStatus) bool {
	if from == to {
		return true
	}
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func parseWorkOrderStatus(raw string) (model.WorkOrderStatus, error) {
	switch s := model.WorkOrderStatus(raw); s {
	case model.WorkOrderStatusAvailable,
		model.WorkOrderStatusTaken,
		model.WorkOrderStatusStarted,
		model.WorkOrderStatusPaused,
		model.WorkOrderStatusCompleted,
		model.WorkOrderStatusInvoiced:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown work order status %q", ErrValidation, raw)
	}
}

func parseQuoteStatus(raw string) (model.QuoteStatus, error) {
	switch s := model.QuoteStatus(raw); s {
	case model.QuoteStatusDraft,
		model.QuoteStatusSent,
		model.QuoteStatusAccepted,
		model.QuoteStatusRejected,
		model.QuoteStatusRevised:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown quote status %q", ErrValidation, raw)
	}
}
