package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusRevised  QuoteStatus = "revised"
)

// Quote is a priced proposal for a customer. Once WorkOrderID is set the
// quote has been converted and cannot be converted again.
type Quote struct {
	ID              string          `json:"id"`
	QuoteNumber     string          `json:"quoteNumber"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Status          QuoteStatus     `json:"status"`
	CustomerID      string          `json:"customerId"`
	Customer        Customer        `json:"customer"`
	ContactID       *string         `json:"contactId,omitempty"`
	Contact         *Contact        `json:"contact,omitempty"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ValidUntil      time.Time       `json:"validUntil"`
	SentAt          *time.Time      `json:"sentAt,omitempty"`
	AcceptedAt      *time.Time      `json:"acceptedAt,omitempty"`
	RejectedAt      *time.Time      `json:"rejectedAt,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	Items           []QuoteItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	VATPercent      decimal.Decimal `json:"vatPercent"`
	VATAmount       decimal.Decimal `json:"vatAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	WorkOrderID     *string         `json:"workOrderId,omitempty"`
	Notes           string          `json:"notes"`
	InternalNotes   string          `json:"internalNotes"`
}

type QuoteItem struct {
	ID              string          `json:"id"`
	QuoteID         string          `json:"quoteId"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	MaterialID      *string         `json:"materialId,omitempty"`
}
