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

type CreateWorkOrderInput struct {
	Title          string
	Description    string
	Priority       string
	CustomerID     string
	ContactID      *string
	CreatedBy      string
	ScheduledDate  *time.Time
	EstimatedHours decimal.Decimal
	Notes          string
	InternalNotes  string
}

type UpdateWorkOrderInput struct {
	Title          *string
	Description    *string
	Priority       *string
	ScheduledDate  *time.Time
	EstimatedHours *decimal.Decimal
	Notes          *string
	InternalNotes  *string
}

type AddMaterialLineInput struct {
	MaterialID string
	Quantity   decimal.Decimal
	UnitPrice  *decimal.Decimal // nil takes the current catalog price
	Notes      string
}

type AddTimeEntryInput struct {
	UserID       string
	Date         time.Time
	StartTime    time.Time
	EndTime      *time.Time
	BreakMinutes int
	IsBillable   bool
	HourlyRate   decimal.Decimal
	Notes        string
}

type AddTravelInput struct {
	UserID            string
	Date              time.Time
	StartTime         *time.Time
	EndTime           *time.Time
	DistanceKm        decimal.Decimal
	TravelTimeMinutes int
	Cost              decimal.Decimal
	Notes             string
}

func (s *Service) ListWorkOrders(ctx context.Context) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		orders, err = store.WorkOrders().List(ctx)
		return err
	})
	return orders, err
}

func (s *Service) GetWorkOrder(ctx context.Context, id string) (*model.WorkOrder, error) {
	var order *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "work order", id)
		}
		order = s.resolveAssignee(ctx, store, wo)
		return nil
	})
	return order, err
}

func (s *Service) CreateWorkOrder(ctx context.Context, input CreateWorkOrderInput) (*model.WorkOrder, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", ErrValidation)
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	var created *model.WorkOrder
	err = s.store.Tx(ctx, func(store repository.Store) error {
		customer, contact, err := s.snapshotCustomer(ctx, store, input.CustomerID, input.ContactID)
		if err != nil {
			return err
		}
		count, err := store.WorkOrders().Count(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		wo := model.WorkOrder{
			ID:             s.newID(),
			OrderNumber:    s.nextOrderNumber(count),
			Title:          input.Title,
			Description:    input.Description,
			Status:         model.WorkOrderStatusAvailable,
			Priority:       priority,
			CustomerID:     input.CustomerID,
			Customer:       customer,
			ContactID:      input.ContactID,
			Contact:        contact,
			CreatedBy:      input.CreatedBy,
			CreatedAt:      now,
			UpdatedAt:      now,
			ScheduledDate:  input.ScheduledDate,
			EstimatedHours: input.EstimatedHours,
			Notes:          input.Notes,
			InternalNotes:  input.InternalNotes,
		}
		if err := store.WorkOrders().Create(ctx, &wo); err != nil {
			return err
		}
		created = &wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("work_order_id", created.ID).Str("order_number", created.OrderNumber).Msg("work order created")
	return created, nil
}

func (s *Service) UpdateWorkOrder(ctx context.Context, id string, input UpdateWorkOrderInput) (*model.WorkOrder, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	var priority *model.Priority
	if input.Priority != nil {
		p, err := parsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		priority = &p
	}

	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "work order", id)
		}
		if input.Title != nil {
			wo.Title = *input.Title
		}
		if input.Description != nil {
			wo.Description = *input.Description
		}
		if priority != nil {
			wo.Priority = *priority
		}
		if input.ScheduledDate != nil {
			wo.ScheduledDate = input.ScheduledDate
		}
		if input.EstimatedHours != nil {
			wo.EstimatedHours = *input.EstimatedHours
		}
		if input.Notes != nil {
			wo.Notes = *input.Notes
		}
		if input.InternalNotes != nil {
			wo.InternalNotes = *input.InternalNotes
		}
		wo.UpdatedAt = s.now()
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", id)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteWorkOrder(ctx context.Context, id string) error {
	return s.store.Tx(ctx, func(store repository.Store) error {
		if err := store.WorkOrders().Delete(ctx, id); err != nil {
			return mapStoreErr(err, "work order", id)
		}
		return nil
	})
}

// AssignWorkOrder sets or clears the assignee. Assigning moves the order to
// "taken" and is allowed from "available" and "taken" (reassignment). A nil
// userID clears the assignee and always reverts the order to "available",
// whatever its current status. Unknown user ids are stored as-is; the
// resolved user simply stays empty.
func (s *Service) AssignWorkOrder(ctx context.Context, id string, userID *string) (*model.WorkOrder, error) {
	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "work order", id)
		}

		if userID == nil {
			wo.AssignedTo = nil
			wo.AssignedUser = nil
			wo.Status = model.WorkOrderStatusAvailable
		} else {
			if !canTransitionWorkOrder(wo.Status, model.WorkOrderStatusTaken) {
				return fmt.Errorf("%w: cannot assign order in status %q", ErrInvalidTransition, wo.Status)
			}
			wo.AssignedTo = userID
			wo.AssignedUser = nil
			if user, err := store.Users().Get(ctx, *userID); err == nil {
				wo.AssignedUser = user
			}
			wo.Status = model.WorkOrderStatusTaken
		}
		wo.UpdatedAt = s.now()
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", id)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateWorkOrderStatus validates the move against the transition table and
// applies the timestamp side effects. StartedAt and CompletedAt are stamped
// on the first entry only, so repeated calls are idempotent; invoicing sets
// the invoiced flag and date.
func (s *Service) UpdateWorkOrderStatus(ctx context.Context, id string, rawStatus string) (*model.WorkOrder, error) {
	status, err := parseWorkOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var updated *model.WorkOrder
	err = s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "work order", id)
		}
		if !canTransitionWorkOrder(wo.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, wo.Status, status)
		}

		now := s.now()
		wo.Status = status
		switch status {
		case model.WorkOrderStatusStarted:
			if wo.StartedAt == nil {
				wo.StartedAt = &now
			}
		case model.WorkOrderStatusCompleted:
			if wo.CompletedAt == nil {
				wo.CompletedAt = &now
			}
		case model.WorkOrderStatusInvoiced:
			if !wo.IsInvoiced {
				wo.IsInvoiced = true
				wo.InvoiceDate = &now
			}
		}
		wo.UpdatedAt = now
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", id)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddMaterialLine appends a priced line snapshotting the catalog material and
// recomputes the order's cost buckets in the same transaction.
func (s *Service) AddMaterialLine(ctx context.Context, workOrderID string, input AddMaterialLineInput) (*model.WorkOrder, error) {
	if input.Quantity.Sign() <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, workOrderID)
		if err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		material, err := store.Materials().Get(ctx, input.MaterialID)
		if err != nil {
			return mapStoreErr(err, "material", input.MaterialID)
		}

		unitPrice := material.Price
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}
		wo.Materials = append(wo.Materials, model.WorkOrderMaterial{
			ID:          s.newID(),
			WorkOrderID: wo.ID,
			MaterialID:  material.ID,
			Material:    *material,
			Quantity:    input.Quantity,
			UnitPrice:   unitPrice,
			Notes:       input.Notes,
		})
		recomputeWorkOrderCosts(wo)
		wo.UpdatedAt = s.now()
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) RemoveMaterialLine(ctx context.Context, workOrderID, lineID string) (*model.WorkOrder, error) {
	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, workOrderID)
		if err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		found := false
		for i := range wo.Materials {
			if wo.Materials[i].ID == lineID {
				wo.Materials = append(wo.Materials[:i], wo.Materials[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: material line %s", ErrNotFound, lineID)
		}
		recomputeWorkOrderCosts(wo)
		wo.UpdatedAt = s.now()
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) AddTimeEntry(ctx context.Context, workOrderID string, input AddTimeEntryInput) (*model.WorkOrder, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time before start_time", ErrValidation)
	}

	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, workOrderID)
		if err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}

		now := s.now()
		entry := model.TimeEntry{
			ID:           s.newID(),
			WorkOrderID:  wo.ID,
			UserID:       input.UserID,
			Date:         input.Date,
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			BreakMinutes: input.BreakMinutes,
			IsBillable:   input.IsBillable,
			HourlyRate:   input.HourlyRate,
			Notes:        input.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		deriveTimeEntry(&entry)
		wo.TimeEntries = append(wo.TimeEntries, entry)
		recomputeWorkOrderCosts(wo)
		wo.UpdatedAt = now
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) AddTravel(ctx context.Context, workOrderID string, input AddTravelInput) (*model.WorkOrder, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if input.Cost.Sign() < 0 {
		return nil, fmt.Errorf("%w: cost cannot be negative", ErrValidation)
	}

	var updated *model.WorkOrder
	err := s.store.Tx(ctx, func(store repository.Store) error {
		wo, err := store.WorkOrders().Get(ctx, workOrderID)
		if err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		wo.Travels = append(wo.Travels, model.Travel{
			ID:                s.newID(),
			WorkOrderID:       wo.ID,
			UserID:            input.UserID,
			Date:              input.Date,
			StartTime:         input.StartTime,
			EndTime:           input.EndTime,
			DistanceKm:        input.DistanceKm,
			TravelTimeMinutes: input.TravelTimeMinutes,
			Cost:              input.Cost,
			Notes:             input.Notes,
			CreatedAt:         s.now(),
		})
		recomputeWorkOrderCosts(wo)
		wo.UpdatedAt = s.now()
		if err := store.WorkOrders().Update(ctx, wo); err != nil {
			return mapStoreErr(err, "work order", workOrderID)
		}
		updated = wo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ExportOperationsReport renders the xlsx operations report from a single
// consistent snapshot of the store.
func (s *Service) ExportOperationsReport(ctx context.Context) (string, []byte, error) {
	var report model.OperationsReport
	err := s.store.Tx(ctx, func(store repository.Store) error {
		stats, err := s.computeStats(ctx, store)
		if err != nil {
			return err
		}
		orders, err := store.WorkOrders().List(ctx)
		if err != nil {
			return err
		}
		report = model.OperationsReport{
			GeneratedAt: s.now(),
			Stats:       *stats,
			WorkOrders:  orders,
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("workorders-%s.xlsx", report.GeneratedAt.Format("20060102-150405"))
	return fileName, content, nil
}

func (s *Service) resolveAssignee(ctx context.Context, store repository.Store, wo *model.WorkOrder) *model.WorkOrder {
	if wo.AssignedTo != nil && wo.AssignedUser == nil {
		if user, err := store.Users().Get(ctx, *wo.AssignedTo); err == nil {
			wo.AssignedUser = user
		}
	}
	return wo
}

func parsePriority(raw string) (model.Priority, error) {
	if raw == "" {
		return model.PriorityMedium, nil
	}
	switch p := model.Priority(raw); p {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, raw)
	}
}
