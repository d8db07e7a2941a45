package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type QuoteItemInput struct {
	Description     string
	Quantity        decimal.Decimal
	Unit            string
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	MaterialID      *string
}

type CreateQuoteInput struct {
	Title           string
	Description     string
	CustomerID      string
	ContactID       *string
	CreatedBy       string
	ValidUntil      time.Time
	Items           []QuoteItemInput
	DiscountPercent decimal.Decimal
	VATPercent      *decimal.Decimal // nil takes the configured default
	Notes           string
	InternalNotes   string
}

type UpdateQuoteInput struct {
	Title           *string
	Description     *string
	ValidUntil      *time.Time
	Items           []QuoteItemInput // non-nil replaces all items
	DiscountPercent *decimal.Decimal
	VATPercent      *decimal.Decimal
	Notes           *string
	InternalNotes   *string
}

type UpdateQuoteStatusInput struct {
	Status          string
	RejectionReason *string
}

func (s *Service) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	var quotes []model.Quote
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		quotes, err = store.Quotes().List(ctx)
		return err
	})
	return quotes, err
}

func (s *Service) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	var quote *model.Quote
	err := s.store.Tx(ctx, func(store repository.Store) error {
		q, err := store.Quotes().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "quote", id)
		}
		quote = q
		return nil
	})
	return quote, err
}

func (s *Service) CreateQuote(ctx context.Context, input CreateQuoteInput) (*model.Quote, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", ErrValidation)
	}

	vat := s.defaultVAT
	if input.VATPercent != nil {
		vat = *input.VATPercent
	}

	var created *model.Quote
	err := s.store.Tx(ctx, func(store repository.Store) error {
		customer, contact, err := s.snapshotCustomer(ctx, store, input.CustomerID, input.ContactID)
		if err != nil {
			return err
		}
		count, err := store.Quotes().Count(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		q := model.Quote{
			ID:              s.newID(),
			QuoteNumber:     s.nextQuoteNumber(count),
			Title:           input.Title,
			Description:     input.Description,
			Status:          model.QuoteStatusDraft,
			CustomerID:      input.CustomerID,
			Customer:        customer,
			ContactID:       input.ContactID,
			Contact:         contact,
			CreatedBy:       input.CreatedBy,
			CreatedAt:       now,
			UpdatedAt:       now,
			ValidUntil:      input.ValidUntil,
			DiscountPercent: input.DiscountPercent,
			VATPercent:      vat,
			Notes:           input.Notes,
			InternalNotes:   input.InternalNotes,
		}
		q.Items = s.buildQuoteItems(q.ID, input.Items)
		recomputeQuoteTotals(&q)
		if err := store.Quotes().Create(ctx, &q); err != nil {
			return err
		}
		created = &q
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("quote_id", created.ID).Str("quote_number", created.QuoteNumber).Msg("quote created")
	return created, nil
}

func (s *Service) UpdateQuote(ctx context.Context, id string, input UpdateQuoteInput) (*model.Quote, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	var updated *model.Quote
	err := s.store.Tx(ctx, func(store repository.Store) error {
		q, err := store.Quotes().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "quote", id)
		}
		if input.Title != nil {
			q.Title = *input.Title
		}
		if input.Description != nil {
			q.Description = *input.Description
		}
		if input.ValidUntil != nil {
			q.ValidUntil = *input.ValidUntil
		}
		if input.Items != nil {
			q.Items = s.buildQuoteItems(q.ID, input.Items)
		}
		if input.DiscountPercent != nil {
			q.DiscountPercent = *input.DiscountPercent
		}
		if input.VATPercent != nil {
			q.VATPercent = *input.VATPercent
		}
		if input.Notes != nil {
			q.Notes = *input.Notes
		}
		if input.InternalNotes != nil {
			q.InternalNotes = *input.InternalNotes
		}
		recomputeQuoteTotals(q)
		q.UpdatedAt = s.now()
		if err := store.Quotes().Update(ctx, q); err != nil {
			return mapStoreErr(err, "quote", id)
		}
		updated = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteQuote(ctx context.Context, id string) error {
	return s.store.Tx(ctx, func(store repository.Store) error {
		if err := store.Quotes().Delete(ctx, id); err != nil {
			return mapStoreErr(err, "quote", id)
		}
		return nil
	})
}

// UpdateQuoteStatus validates the move against the quote transition table.
// SentAt/AcceptedAt/RejectedAt are stamped on first entry; the rejection
// reason is recorded only for rejections.
func (s *Service) UpdateQuoteStatus(ctx context.Context, id string, input UpdateQuoteStatusInput) (*model.Quote, error) {
	status, err := parseQuoteStatus(input.Status)
	if err != nil {
		return nil, err
	}

	var updated *model.Quote
	err = s.store.Tx(ctx, func(store repository.Store) error {
		q, err := store.Quotes().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "quote", id)
		}
		if !canTransitionQuote(q.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, status)
		}

		now := s.now()
		q.Status = status
		switch status {
		case model.QuoteStatusSent:
			if q.SentAt == nil {
				q.SentAt = &now
			}
		case model.QuoteStatusAccepted:
			if q.AcceptedAt == nil {
				q.AcceptedAt = &now
			}
		case model.QuoteStatusRejected:
			if q.RejectedAt == nil {
				q.RejectedAt = &now
			}
			q.RejectionReason = input.RejectionReason
		}
		q.UpdatedAt = now
		if err := store.Quotes().Update(ctx, q); err != nil {
			return mapStoreErr(err, "quote", id)
		}
		updated = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ConvertQuoteToWorkOrder produces a new work order from an accepted quote.
// The order starts in "available" with medium priority and zero cost buckets
// while its top-line total is seeded from the quote. Both links are written
// in the same transaction. Converting a quote that is not accepted or that
// already carries a work-order link fails without mutation.
func (s *Service) ConvertQuoteToWorkOrder(ctx context.Context, quoteID string) (*model.WorkOrder, error) {
	var created *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		q, err := store.Quotes().Get(ctx, quoteID)
		if err != nil {
			return mapStoreErr(err, "quote", quoteID)
		}
		if q.Status != model.QuoteStatusAccepted {
			return fmt.Errorf("%w: quote %s is %q, only accepted quotes convert", ErrInvalidState, quoteID, q.Status)
		}
		if q.WorkOrderID != nil {
			return fmt.Errorf("%w: quote %s -> work order %s", ErrAlreadyConverted, quoteID, *q.WorkOrderID)
		}

		count, err := store.WorkOrders().Count(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		wo := model.WorkOrder{
			ID:          s.newID(),
			OrderNumber: s.nextOrderNumber(count),
			Title:       q.Title,
			Description: q.Description,
			Status:      model.WorkOrderStatusAvailable,
			Priority:    model.PriorityMedium,
			CustomerID:  q.CustomerID,
			Customer:    q.Customer,
			ContactID:   q.ContactID,
			Contact:     q.Contact,
			CreatedBy:   q.CreatedBy,
			CreatedAt:   now,
			UpdatedAt:   now,
			TotalAmount: q.TotalAmount,
			QuoteID:     &q.ID,
		}
		if err := store.WorkOrders().Create(ctx, &wo); err != nil {
			return err
		}

		q.WorkOrderID = &wo.ID
		q.UpdatedAt = now
		if err := store.Quotes().Update(ctx, q); err != nil {
			return mapStoreErr(err, "quote", quoteID)
		}
		created = &wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("quote_id", quoteID).
		Str("work_order_id", created.ID).
		Str("order_number", created.OrderNumber).
		Msg("quote converted to work order")
	return created, nil
}

// RenderQuotePDF renders the printable quote document.
func (s *Service) RenderQuotePDF(ctx context.Context, id string) (string, []byte, error) {
	quote, err := s.GetQuote(ctx, id)
	if err != nil {
		return "", nil, err
	}
	content, err := s.pdf.Generate(*quote)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("quote-%s.pdf", quote.QuoteNumber), content, nil
}

func (s *Service) buildQuoteItems(quoteID string, inputs []QuoteItemInput) []model.QuoteItem {
	items := make([]model.QuoteItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.QuoteItem{
			ID:              s.newID(),
			QuoteID:         quoteID,
			Description:     in.Description,
			Quantity:        in.Quantity,
			Unit:            in.Unit,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			MaterialID:      in.MaterialID,
		})
	}
	return items
}
