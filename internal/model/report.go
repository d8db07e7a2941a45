package model

import "time"

// OperationsReport is the input for the xlsx export: a stats snapshot plus
// the full order listing, both taken in one store transaction.
type OperationsReport struct {
	GeneratedAt time.Time
	Stats       DashboardStats
	WorkOrders  []WorkOrder
}
