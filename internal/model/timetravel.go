package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry records work time against a work order. TotalMinutes and
// TotalCost are derived from start/end/break and the hourly rate.
type TimeEntry struct {
	ID           string          `json:"id"`
	WorkOrderID  string          `json:"workOrderId"`
	UserID       string          `json:"userId"`
	Date         time.Time       `json:"date"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      *time.Time      `json:"endTime,omitempty"`
	BreakMinutes int             `json:"breakMinutes"`
	TotalMinutes int             `json:"totalMinutes"`
	Notes        string          `json:"notes,omitempty"`
	IsBillable   bool            `json:"isBillable"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type Travel struct {
	ID                string          `json:"id"`
	WorkOrderID       string          `json:"workOrderId"`
	UserID            string          `json:"userId"`
	Date              time.Time       `json:"date"`
	StartTime         *time.Time      `json:"startTime,omitempty"`
	EndTime           *time.Time      `json:"endTime,omitempty"`
	DistanceKm        decimal.Decimal `json:"distanceKm"`
	TravelTimeMinutes int             `json:"travelTimeMinutes"`
	Cost              decimal.Decimal `json:"cost"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}
