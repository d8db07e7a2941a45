package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type workOrderRepo struct {
	db *gorm.DB
}

var _ repository.WorkOrderRepository = (*workOrderRepo)(nil)

type workOrderRow struct {
	ID             string
	OrderNumber    string
	Title          string
	Description    string
	Status         string
	Priority       string
	CustomerID     string
	Customer       string
	ContactID      *string
	Contact        *string
	AssignedTo     *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ScheduledDate  *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	MaterialCost   decimal.Decimal
	LaborCost      decimal.Decimal
	TravelCost     decimal.Decimal
	TotalAmount    decimal.Decimal
	QuoteID        *string
	IsInvoiced     bool
	InvoiceDate    *time.Time
	Notes          string
	InternalNotes  string
}

const workOrderColumns = `
	id, order_number, title, description, status, priority,
	customer_id, customer::text AS customer, contact_id, contact::text AS contact,
	assigned_to, created_by, created_at, updated_at,
	scheduled_date, started_at, completed_at,
	estimated_hours, actual_hours,
	material_cost, labor_cost, travel_cost, total_amount,
	quote_id, is_invoiced, invoice_date, notes, internal_notes
`

func (r *workOrderRepo) List(ctx context.Context) ([]model.WorkOrder, error) {
	var rows []workOrderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+workOrderColumns+`
		FROM work_orders
		ORDER BY position DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]model.WorkOrder, 0, len(rows))
	for i := range rows {
		wo, err := r.hydrate(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, *wo)
	}
	return orders, nil
}

func (r *workOrderRepo) Get(ctx context.Context, id string) (*model.WorkOrder, error) {
	var row workOrderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+workOrderColumns+`
		FROM work_orders
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

func (r *workOrderRepo) Create(ctx context.Context, wo *model.WorkOrder) error {
	customerJSON, err := marshalJSON(wo.Customer)
	if err != nil {
		return err
	}
	contactJSON, err := marshalContact(wo.Contact)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Exec(`
		INSERT INTO work_orders (
			id, order_number, title, description, status, priority,
			customer_id, customer, contact_id, contact,
			assigned_to, created_by, created_at, updated_at,
			scheduled_date, started_at, completed_at,
			estimated_hours, actual_hours,
			material_cost, labor_cost, travel_cost, total_amount,
			quote_id, is_invoiced, invoice_date, notes, internal_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?::jsonb, ?, ?::jsonb, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		wo.ID, wo.OrderNumber, wo.Title, wo.Description, wo.Status, wo.Priority,
		wo.CustomerID, customerJSON, wo.ContactID, contactJSON,
		wo.AssignedTo, wo.CreatedBy, wo.CreatedAt, wo.UpdatedAt,
		wo.ScheduledDate, wo.StartedAt, wo.CompletedAt,
		wo.EstimatedHours, wo.ActualHours,
		wo.MaterialCost, wo.LaborCost, wo.TravelCost, wo.TotalAmount,
		wo.QuoteID, wo.IsInvoiced, wo.InvoiceDate, wo.Notes, wo.InternalNotes,
	).Error
	if err != nil {
		return err
	}
	return r.replaceChildren(ctx, wo)
}

func (r *workOrderRepo) Update(ctx context.Context, wo *model.WorkOrder) error {
	customerJSON, err := marshalJSON(wo.Customer)
	if err != nil {
		return err
	}
	contactJSON, err := marshalContact(wo.Contact)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE work_orders SET
			order_number = ?, title = ?, description = ?, status = ?, priority = ?,
			customer_id = ?, customer = ?::jsonb, contact_id = ?, contact = ?::jsonb,
			assigned_to = ?, created_by = ?, updated_at = ?,
			scheduled_date = ?, started_at = ?, completed_at = ?,
			estimated_hours = ?, actual_hours = ?,
			material_cost = ?, labor_cost = ?, travel_cost = ?, total_amount = ?,
			quote_id = ?, is_invoiced = ?, invoice_date = ?, notes = ?, internal_notes = ?
		WHERE id = ?
	`,
		wo.OrderNumber, wo.Title, wo.Description, wo.Status, wo.Priority,
		wo.CustomerID, customerJSON, wo.ContactID, contactJSON,
		wo.AssignedTo, wo.CreatedBy, wo.UpdatedAt,
		wo.ScheduledDate, wo.StartedAt, wo.CompletedAt,
		wo.EstimatedHours, wo.ActualHours,
		wo.MaterialCost, wo.LaborCost, wo.TravelCost, wo.TotalAmount,
		wo.QuoteID, wo.IsInvoiced, wo.InvoiceDate, wo.Notes, wo.InternalNotes,
		wo.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return r.replaceChildren(ctx, wo)
}

func (r *workOrderRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM work_orders WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (r *workOrderRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM work_orders`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// replaceChildren rewrites the owned line collections wholesale. It runs
// inside the surrounding transaction, so readers never see the gap.
func (r *workOrderRepo) replaceChildren(ctx context.Context, wo *model.WorkOrder) error {
	db := r.db.WithContext(ctx)
	for _, table := range []string{
		"work_order_materials", "work_order_travels", "work_order_time_entries",
		"work_order_images", "work_order_documents",
	} {
		if err := db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE work_order_id = ?`, table), wo.ID).Error; err != nil {
			return err
		}
	}

	for _, line := range wo.Materials {
		materialJSON, err := marshalJSON(line.Material)
		if err != nil {
			return err
		}
		if err := db.Exec(`
			INSERT INTO work_order_materials (id, work_order_id, material_id, material, quantity, unit_price, total_price, notes)
			VALUES (?, ?, ?, ?::jsonb, ?, ?, ?, ?)
		`, line.ID, wo.ID, line.MaterialID, materialJSON, line.Quantity, line.UnitPrice, line.TotalPrice, line.Notes).Error; err != nil {
			return err
		}
	}
	for _, t := range wo.Travels {
		if err := db.Exec(`
			INSERT INTO work_order_travels (id, work_order_id, user_id, date, start_time, end_time, distance_km, travel_time_minutes, cost, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, wo.ID, t.UserID, t.Date, t.StartTime, t.EndTime, t.DistanceKm, t.TravelTimeMinutes, t.Cost, t.Notes, t.CreatedAt).Error; err != nil {
			return err
		}
	}
	for _, te := range wo.TimeEntries {
		if err := db.Exec(`
			INSERT INTO work_order_time_entries (id, work_order_id, user_id, date, start_time, end_time, break_minutes, total_minutes, notes, is_billable, hourly_rate, total_cost, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, te.ID, wo.ID, te.UserID, te.Date, te.StartTime, te.EndTime, te.BreakMinutes, te.TotalMinutes, te.Notes, te.IsBillable, te.HourlyRate, te.TotalCost, te.CreatedAt, te.UpdatedAt).Error; err != nil {
			return err
		}
	}
	for _, img := range wo.Images {
		if err := db.Exec(`
			INSERT INTO work_order_images (id, work_order_id, url, thumbnail_url, caption, uploaded_by, uploaded_at, file_size, mime_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, img.ID, wo.ID, img.URL, img.ThumbnailURL, img.Caption, img.UploadedBy, img.UploadedAt, img.FileSize, img.MimeType).Error; err != nil {
			return err
		}
	}
	for _, doc := range wo.Documents {
		if err := db.Exec(`
			INSERT INTO work_order_documents (id, work_order_id, name, url, file_type, file_size, uploaded_by, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, wo.ID, doc.Name, doc.URL, doc.FileType, doc.FileSize, doc.UploadedBy, doc.UploadedAt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *workOrderRepo) hydrate(ctx context.Context, row *workOrderRow) (*model.WorkOrder, error) {
	customer, err := unmarshalCustomer(row.Customer)
	if err != nil {
		return nil, err
	}
	contact, err := unmarshalContact(row.Contact)
	if err != nil {
		return nil, err
	}

	wo := &model.WorkOrder{
		ID:             row.ID,
		OrderNumber:    row.OrderNumber,
		Title:          row.Title,
		Description:    row.Description,
		Status:         model.WorkOrderStatus(row.Status),
		Priority:       model.Priority(row.Priority),
		CustomerID:     row.CustomerID,
		Customer:       customer,
		ContactID:      row.ContactID,
		Contact:        contact,
		AssignedTo:     row.AssignedTo,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		ScheduledDate:  row.ScheduledDate,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		EstimatedHours: row.EstimatedHours,
		ActualHours:    row.ActualHours,
		MaterialCost:   row.MaterialCost,
		LaborCost:      row.LaborCost,
		TravelCost:     row.TravelCost,
		TotalAmount:    row.TotalAmount,
		QuoteID:        row.QuoteID,
		IsInvoiced:     row.IsInvoiced,
		InvoiceDate:    row.InvoiceDate,
		Notes:          row.Notes,
		InternalNotes:  row.InternalNotes,
	}

	db := r.db.WithContext(ctx)

	var materialRows []struct {
		ID         string
		MaterialID string
		Material   string
		Quantity   decimal.Decimal
		UnitPrice  decimal.Decimal
		TotalPrice decimal.Decimal
		Notes      string
	}
	err = db.Raw(`
		SELECT id, material_id, material::text AS material, quantity, unit_price, total_price, notes
		FROM work_order_materials WHERE work_order_id = ? ORDER BY position
	`, wo.ID).Scan(&materialRows).Error
	if err != nil {
		return nil, err
	}
	for _, m := range materialRows {
		var material model.Material
		if err := json.Unmarshal([]byte(m.Material), &material); err != nil {
			return nil, fmt.Errorf("unmarshal material snapshot: %w", err)
		}
		wo.Materials = append(wo.Materials, model.WorkOrderMaterial{
			ID:          m.ID,
			WorkOrderID: wo.ID,
			MaterialID:  m.MaterialID,
			Material:    material,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
			TotalPrice:  m.TotalPrice,
			Notes:       m.Notes,
		})
	}

	err = db.Raw(`
		SELECT id, user_id, date, start_time, end_time, distance_km, travel_time_minutes, cost, notes, created_at
		FROM work_order_travels WHERE work_order_id = ? ORDER BY position
	`, wo.ID).Scan(&wo.Travels).Error
	if err != nil {
		return nil, err
	}
	for i := range wo.Travels {
		wo.Travels[i].WorkOrderID = wo.ID
	}

	err = db.Raw(`
		SELECT id, user_id, date, start_time, end_time, break_minutes, total_minutes, notes, is_billable, hourly_rate, total_cost, created_at, updated_at
		FROM work_order_time_entries WHERE work_order_id = ? ORDER BY position
	`, wo.ID).Scan(&wo.TimeEntries).Error
	if err != nil {
		return nil, err
	}
	for i := range wo.TimeEntries {
		wo.TimeEntries[i].WorkOrderID = wo.ID
	}

	err = db.Raw(`
		SELECT id, url, thumbnail_url, caption, uploaded_by, uploaded_at, file_size, mime_type
		FROM work_order_images WHERE work_order_id = ? ORDER BY position
	`, wo.ID).Scan(&wo.Images).Error
	if err != nil {
		return nil, err
	}
	for i := range wo.Images {
		wo.Images[i].WorkOrderID = wo.ID
	}

	err = db.Raw(`
		SELECT id, name, url, file_type, file_size, uploaded_by, uploaded_at
		FROM work_order_documents WHERE work_order_id = ? ORDER BY position
	`, wo.ID).Scan(&wo.Documents).Error
	if err != nil {
		return nil, err
	}
	for i := range wo.Documents {
		wo.Documents[i].WorkOrderID = wo.ID
	}

	return wo, nil
}
