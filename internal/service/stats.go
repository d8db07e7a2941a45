package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

const (
	recentWorkOrderCount = 5
	recentQuoteCount     = 3
)

// GetDashboardStats recomputes the dashboard projection from the current
// collections. The full rescan is O(n); at larger scale this would move to
// incremental per-status counters maintained on each transition.
func (s *Service) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats *model.DashboardStats
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		stats, err = s.computeStats(ctx, store)
		return err
	})
	return stats, err
}

func (s *Service) computeStats(ctx context.Context, store repository.Store) (*model.DashboardStats, error) {
	workOrders, err := store.WorkOrders().List(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := store.Quotes().List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &model.DashboardStats{
		Revenue: model.RevenueBuckets{
			ThisMonth: decimal.Zero,
			LastMonth: decimal.Zero,
			ThisYear:  decimal.Zero,
			Pending:   decimal.Zero,
		},
		RecentWorkOrders:   []model.WorkOrder{},
		RecentQuotes:       []model.Quote{},
		UpcomingWorkOrders: []model.WorkOrder{},
	}

	for i := range workOrders {
		wo := &workOrders[i]
		switch wo.Status {
		case model.WorkOrderStatusAvailable:
			stats.WorkOrders.Available++
		case model.WorkOrderStatusTaken:
			stats.WorkOrders.Taken++
		case model.WorkOrderStatusStarted:
			stats.WorkOrders.Started++
		case model.WorkOrderStatusPaused:
			stats.WorkOrders.Paused++
		case model.WorkOrderStatusCompleted:
			stats.WorkOrders.Completed++
		case model.WorkOrderStatusInvoiced:
			stats.WorkOrders.Invoiced++
		}

		if wo.IsInvoiced && wo.InvoiceDate != nil {
			d := *wo.InvoiceDate
			if d.Year() == now.Year() {
				stats.Revenue.ThisYear = stats.Revenue.ThisYear.Add(wo.TotalAmount)
				if d.Month() == now.Month() {
					stats.Revenue.ThisMonth = stats.Revenue.ThisMonth.Add(wo.TotalAmount)
				}
			}
			prev := now.AddDate(0, -1, 0)
			if d.Year() == prev.Year() && d.Month() == prev.Month() {
				stats.Revenue.LastMonth = stats.Revenue.LastMonth.Add(wo.TotalAmount)
			}
		}
		if wo.Status == model.WorkOrderStatusCompleted && !wo.IsInvoiced {
			stats.Revenue.Pending = stats.Revenue.Pending.Add(wo.TotalAmount)
		}

		switch wo.Status {
		case model.WorkOrderStatusAvailable, model.WorkOrderStatusTaken, model.WorkOrderStatusStarted:
			stats.UpcomingWorkOrders = append(stats.UpcomingWorkOrders, *wo)
		}
	}
	stats.WorkOrders.Total = len(workOrders)

	for i := range quotes {
		switch quotes[i].Status {
		case model.QuoteStatusDraft:
			stats.Quotes.Draft++
		case model.QuoteStatusSent:
			stats.Quotes.Sent++
		case model.QuoteStatusAccepted:
			stats.Quotes.Accepted++
		case model.QuoteStatusRejected:
			stats.Quotes.Rejected++
		}
	}
	stats.Quotes.Total = len(quotes)

	// Collections are ordered newest-first, so the leading slice is the
	// most recent set.
	if len(workOrders) > recentWorkOrderCount {
		stats.RecentWorkOrders = workOrders[:recentWorkOrderCount]
	} else {
		stats.RecentWorkOrders = workOrders
	}
	if len(quotes) > recentQuoteCount {
		stats.RecentQuotes = quotes[:recentQuoteCount]
	} else {
		stats.RecentQuotes = quotes
	}

	return stats, nil
}
