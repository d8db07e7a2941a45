package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type quoteRepo struct {
	db *gorm.DB
}

var _ repository.QuoteRepository = (*quoteRepo)(nil)

type quoteRow struct {
	ID              string
	QuoteNumber     string
	Title           string
	Description     string
	Status          string
	CustomerID      string
	Customer        string
	ContactID       *string
	Contact         *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ValidUntil      time.Time
	SentAt          *time.Time
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason *string
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	VATPercent      decimal.Decimal
	VATAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	WorkOrderID     *string
	Notes           string
	InternalNotes   string
}

const quoteColumns = `
	id, quote_number, title, description, status,
	customer_id, customer::text AS customer, contact_id, contact::text AS contact,
	created_by, created_at, updated_at, valid_until,
	sent_at, accepted_at, rejected_at, rejection_reason,
	subtotal, discount_percent, discount_amount,
	vat_percent, vat_amount, total_amount,
	work_order_id, notes, internal_notes
`

func (r *quoteRepo) List(ctx context.Context) ([]model.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + quoteColumns + `
		FROM quotes
		ORDER BY position DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(rows))
	for i := range rows {
		q, err := r.hydrate(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

func (r *quoteRepo) Get(ctx context.Context, id string) (*model.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, repository.ErrNoRows
	}
	return r.hydrate(ctx, &row)
}

func (r *quoteRepo) Create(ctx context.Context, q *model.Quote) error {
	customerJSON, err := marshalJSON(q.Customer)
	if err != nil {
		return err
	}
	contactJSON, err := marshalContact(q.Contact)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Exec(`
		INSERT INTO quotes (
			id, quote_number, title, description, status,
			customer_id, customer, contact_id, contact,
			created_by, created_at, updated_at, valid_until,
			sent_at, accepted_at, rejected_at, rejection_reason,
			subtotal, discount_percent, discount_amount,
			vat_percent, vat_amount, total_amount,
			work_order_id, notes, internal_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?::jsonb, ?, ?::jsonb, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		q.ID, q.QuoteNumber, q.Title, q.Description, q.Status,
		q.CustomerID, customerJSON, q.ContactID, contactJSON,
		q.CreatedBy, q.CreatedAt, q.UpdatedAt, q.ValidUntil,
		q.SentAt, q.AcceptedAt, q.RejectedAt, q.RejectionReason,
		q.Subtotal, q.DiscountPercent, q.DiscountAmount,
		q.VATPercent, q.VATAmount, q.TotalAmount,
		q.WorkOrderID, q.Notes, q.InternalNotes,
	).Error
	if err != nil {
		return err
	}
	return r.replaceItems(ctx, q)
}

func (r *quoteRepo) Update(ctx context.Context, q *model.Quote) error {
	customerJSON, err := marshalJSON(q.Customer)
	if err != nil {
		return err
	}
	contactJSON, err := marshalContact(q.Contact)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes SET
			quote_number = ?, title = ?, description = ?, status = ?,
			customer_id = ?, customer = ?::jsonb, contact_id = ?, contact = ?::jsonb,
			created_by = ?, updated_at = ?, valid_until = ?,
			sent_at = ?, accepted_at = ?, rejected_at = ?, rejection_reason = ?,
			subtotal = ?, discount_percent = ?, discount_amount = ?,
			vat_percent = ?, vat_amount = ?, total_amount = ?,
			work_order_id = ?, notes = ?, internal_notes = ?
		WHERE id = ?
	`,
		q.QuoteNumber, q.Title, q.Description, q.Status,
		q.CustomerID, customerJSON, q.ContactID, contactJSON,
		q.CreatedBy, q.UpdatedAt, q.ValidUntil,
		q.SentAt, q.AcceptedAt, q.RejectedAt, q.RejectionReason,
		q.Subtotal, q.DiscountPercent, q.DiscountAmount,
		q.VATPercent, q.VATAmount, q.TotalAmount,
		q.WorkOrderID, q.Notes, q.InternalNotes,
		q.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return r.replaceItems(ctx, q)
}

func (r *quoteRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (r *quoteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM quotes`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quoteRepo) replaceItems(ctx context.Context, q *model.Quote) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec(`DELETE FROM quote_items WHERE quote_id = ?`, q.ID).Error; err != nil {
		return err
	}
	for _, item := range q.Items {
		if err := db.Exec(`
			INSERT INTO quote_items (id, quote_id, description, quantity, unit, unit_price, discount_percent, total_price, material_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, q.ID, item.Description, item.Quantity, item.Unit, item.UnitPrice, item.DiscountPercent, item.TotalPrice, item.MaterialID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *quoteRepo) hydrate(ctx context.Context, row *quoteRow) (*model.Quote, error) {
	customer, err := unmarshalCustomer(row.Customer)
	if err != nil {
		return nil, err
	}
	contact, err := unmarshalContact(row.Contact)
	if err != nil {
		return nil, err
	}

	q := &model.Quote{
		ID:              row.ID,
		QuoteNumber:     row.QuoteNumber,
		Title:           row.Title,
		Description:     row.Description,
		Status:          model.QuoteStatus(row.Status),
		CustomerID:      row.CustomerID,
		Customer:        customer,
		ContactID:       row.ContactID,
		Contact:         contact,
		CreatedBy:       row.CreatedBy,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		ValidUntil:      row.ValidUntil,
		SentAt:          row.SentAt,
		AcceptedAt:      row.AcceptedAt,
		RejectedAt:      row.RejectedAt,
		RejectionReason: row.RejectionReason,
		Subtotal:        row.Subtotal,
		DiscountPercent: row.DiscountPercent,
		DiscountAmount:  row.DiscountAmount,
		VATPercent:      row.VATPercent,
		VATAmount:       row.VATAmount,
		TotalAmount:     row.TotalAmount,
		WorkOrderID:     row.WorkOrderID,
		Notes:           row.Notes,
		InternalNotes:   row.InternalNotes,
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT id, description, quantity, unit, unit_price, discount_percent, total_price, material_id
		FROM quote_items WHERE quote_id = ? ORDER BY position
	`, q.ID).Scan(&q.Items).Error
	if err != nil {
		return nil, err
	}
	for i := range q.Items {
		q.Items[i].QuoteID = q.ID
	}
	return q, nil
}
