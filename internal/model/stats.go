package model

import "github.com/shopspring/decimal"

// DashboardStats is a projection of the current work-order and quote
// collections. It is recomputed on demand and never persisted.
type DashboardStats struct {
	WorkOrders         WorkOrderCounts `json:"workOrders"`
	Quotes             QuoteCounts     `json:"quotes"`
	Revenue            RevenueBuckets  `json:"revenue"`
	RecentWorkOrders   []WorkOrder     `json:"recentWorkOrders"`
	RecentQuotes       []Quote         `json:"recentQuotes"`
	UpcomingWorkOrders []WorkOrder     `json:"upcomingWorkOrders"`
}

type WorkOrderCounts struct {
	Available int `json:"available"`
	Taken     int `json:"taken"`
	Started   int `json:"started"`
	Paused    int `json:"paused"`
	Completed int `json:"completed"`
	Invoiced  int `json:"invoiced"`
	Total     int `json:"total"`
}

type QuoteCounts struct {
	Draft    int `json:"draft"`
	Sent     int `json:"sent"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type RevenueBuckets struct {
	ThisMonth decimal.Decimal `json:"thisMonth"`
	LastMonth decimal.Decimal `json:"lastMonth"`
	ThisYear  decimal.Decimal `json:"thisYear"`
	Pending   decimal.Decimal `json:"pending"`
}
