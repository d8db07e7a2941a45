package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkOrderStatus string

const (
	WorkOrderStatusAvailable WorkOrderStatus = "available"
	WorkOrderStatusTaken     WorkOrderStatus = "taken"
	WorkOrderStatusStarted   WorkOrderStatus = "started"
	WorkOrderStatusPaused    WorkOrderStatus = "paused"
	WorkOrderStatusCompleted WorkOrderStatus = "completed"
	WorkOrderStatusInvoiced  WorkOrderStatus = "invoiced"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// WorkOrder is a unit of billable field work. Customer and Contact are
// snapshots taken when the order is written, never refreshed from the
// customer register afterwards.
type WorkOrder struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         WorkOrderStatus     `json:"status"`
	Priority       Priority            `json:"priority"`
	CustomerID     string              `json:"customerId"`
	Customer       Customer            `json:"customer"`
	ContactID      *string             `json:"contactId,omitempty"`
	Contact        *Contact            `json:"contact,omitempty"`
	AssignedTo     *string             `json:"assignedTo,omitempty"`
	AssignedUser   *User               `json:"assignedUser,omitempty"`
	CreatedBy      string              `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	ScheduledDate  *time.Time          `json:"scheduledDate,omitempty"`
	StartedAt      *time.Time          `json:"startedAt,omitempty"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
	EstimatedHours decimal.Decimal     `json:"estimatedHours"`
	ActualHours    decimal.Decimal     `json:"actualHours"`
	Materials      []WorkOrderMaterial `json:"materials"`
	Travels        []Travel            `json:"travels"`
	TimeEntries    []TimeEntry         `json:"timeEntries"`
	Images         []WorkOrderImage    `json:"images"`
	Documents      []WorkOrderDocument `json:"documents"`
	MaterialCost   decimal.Decimal     `json:"materialCost"`
	LaborCost      decimal.Decimal     `json:"laborCost"`
	TravelCost     decimal.Decimal     `json:"travelCost"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	QuoteID        *string             `json:"quoteId,omitempty"`
	IsInvoiced     bool                `json:"isInvoiced"`
	InvoiceDate    *time.Time          `json:"invoiceDate,omitempty"`
	Notes          string              `json:"notes"`
	InternalNotes  string              `json:"internalNotes"`
}

// WorkOrderMaterial is a priced line on a work order. UnitPrice is a
// snapshot of the catalog price at the time the line was added.
type WorkOrderMaterial struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"workOrderId"`
	MaterialID  string          `json:"materialId"`
	Material    Material        `json:"material"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Notes       string          `json:"notes,omitempty"`
}

type WorkOrderImage struct {
	ID           string    `json:"id"`
	WorkOrderID  string    `json:"workOrderId"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Caption      string    `json:"caption,omitempty"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `json:"mimeType"`
}

type WorkOrderDocument struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"workOrderId"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
