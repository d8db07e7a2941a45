package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
)

func TestCreateWorkOrderValidation(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	_, err := svc.CreateWorkOrder(ctx, CreateWorkOrderInput{CustomerID: customer.ID})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing title, got %v", err)
	}

	_, err = svc.CreateWorkOrder(ctx, CreateWorkOrderInput{Title: "No customer"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing customer, got %v", err)
	}

	_, err = svc.CreateWorkOrder(ctx, CreateWorkOrderInput{Title: "Bad priority", CustomerID: customer.ID, Priority: "extreme"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown priority, got %v", err)
	}

	_, err = svc.CreateWorkOrder(ctx, CreateWorkOrderInput{Title: "Ghost customer", CustomerID: "cust-missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown customer, got %v", err)
	}
}

func TestCreateWorkOrderDefaults(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)

	wo := createWorkOrder(t, svc, customer.ID)
	if wo.Status != model.WorkOrderStatusAvailable {
		t.Fatalf("expected status available got %s", wo.Status)
	}
	if wo.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority medium got %s", wo.Priority)
	}
	if wo.Customer.Name != customer.Name {
		t.Fatalf("expected customer snapshot, got %+v", wo.Customer)
	}
	if !wo.TotalAmount.IsZero() {
		t.Fatalf("expected zero total got %s", wo.TotalAmount)
	}
}

func TestStatusTransitionsHappyPath(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	wo, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if wo.Status != model.WorkOrderStatusTaken {
		t.Fatalf("expected taken got %s", wo.Status)
	}
	if wo.AssignedUser == nil || wo.AssignedUser.ID != user.ID {
		t.Fatalf("expected resolved assignee, got %+v", wo.AssignedUser)
	}

	for _, status := range []string{"started", "paused", "started", "completed", "invoiced"} {
		wo, err = svc.UpdateWorkOrderStatus(ctx, wo.ID, status)
		if err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}
	if wo.StartedAt == nil || wo.CompletedAt == nil {
		t.Fatalf("expected started/completed timestamps, got %+v", wo)
	}
	if !wo.IsInvoiced || wo.InvoiceDate == nil {
		t.Fatalf("expected invoiced flag and date, got %+v", wo)
	}
}

func TestStatusTransitionRejectedWithoutMutation(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	_, err := svc.UpdateWorkOrderStatus(ctx, wo.ID, "completed")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	after, err := svc.GetWorkOrder(ctx, wo.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Status != model.WorkOrderStatusAvailable {
		t.Fatalf("rejected transition must not mutate, got status %s", after.Status)
	}
	if after.CompletedAt != nil {
		t.Fatalf("rejected transition must not stamp timestamps")
	}

	_, err = svc.UpdateWorkOrderStatus(ctx, wo.ID, "delivered")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
}

func TestStartedTwiceKeepsFirstTimestamp(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)
	if _, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	first, err := svc.UpdateWorkOrderStatus(ctx, wo.ID, "started")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	startedAt := *first.StartedAt

	svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	second, err := svc.UpdateWorkOrderStatus(ctx, wo.ID, "started")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !second.StartedAt.Equal(startedAt) {
		t.Fatalf("expected StartedAt %v preserved, got %v", startedAt, *second.StartedAt)
	}
}

func TestAssignmentSymmetry(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	other := seedUser(t, store, "user-2")
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	wo, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Reassignment while taken is allowed.
	wo, err = svc.AssignWorkOrder(ctx, wo.ID, &other.ID)
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if *wo.AssignedTo != other.ID {
		t.Fatalf("expected assignee %s got %s", other.ID, *wo.AssignedTo)
	}

	wo, err = svc.AssignWorkOrder(ctx, wo.ID, nil)
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if wo.AssignedTo != nil || wo.AssignedUser != nil {
		t.Fatalf("expected cleared assignee, got %+v", wo)
	}
	if wo.Status != model.WorkOrderStatusAvailable {
		t.Fatalf("expected available after unassign, got %s", wo.Status)
	}
}

func TestAssignRejectedOnceStarted(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)
	if _, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := svc.UpdateWorkOrderStatus(ctx, wo.ID, "started"); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition assigning a started order, got %v", err)
	}
}

func TestUnassignFromStartedRevertsToAvailable(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	user := seedUser(t, store, "user-1")
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)
	if _, err := svc.AssignWorkOrder(ctx, wo.ID, &user.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := svc.UpdateWorkOrderStatus(ctx, wo.ID, "started"); err != nil {
		t.Fatalf("start: %v", err)
	}

	wo, err := svc.AssignWorkOrder(ctx, wo.ID, nil)
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if wo.Status != model.WorkOrderStatusAvailable {
		t.Fatalf("expected available after unassign from started, got %s", wo.Status)
	}
}

func TestAssignUnknownUserKeepsID(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)
	ghost := "user-missing"
	wo, err := svc.AssignWorkOrder(ctx, wo.ID, &ghost)
	if err != nil {
		t.Fatalf("assign unknown user: %v", err)
	}
	if wo.AssignedTo == nil || *wo.AssignedTo != ghost {
		t.Fatalf("expected stored assignee id, got %+v", wo.AssignedTo)
	}
	if wo.AssignedUser != nil {
		t.Fatalf("expected unresolved user, got %+v", wo.AssignedUser)
	}
}

func TestCostRecomputationAfterLineMutations(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	seedUser(t, store, "user-1")
	material := seedMaterial(t, store, "mat-1", decimal.NewFromInt(295))
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	wo, err := svc.AddMaterialLine(ctx, wo.ID, AddMaterialLineInput{
		MaterialID: material.ID,
		Quantity:   decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("add material: %v", err)
	}
	if !wo.MaterialCost.Equal(decimal.NewFromInt(590)) {
		t.Fatalf("expected material cost 590 got %s", wo.MaterialCost)
	}
	if !wo.Materials[0].UnitPrice.Equal(material.Price) {
		t.Fatalf("expected catalog price snapshot, got %s", wo.Materials[0].UnitPrice)
	}

	override := decimal.NewFromInt(100)
	wo, err = svc.AddMaterialLine(ctx, wo.ID, AddMaterialLineInput{
		MaterialID: material.ID,
		Quantity:   decimal.NewFromInt(3),
		UnitPrice:  &override,
	})
	if err != nil {
		t.Fatalf("add material: %v", err)
	}
	if !wo.MaterialCost.Equal(decimal.NewFromInt(890)) {
		t.Fatalf("expected material cost 890 got %s", wo.MaterialCost)
	}

	end := testNow.Add(2 * time.Hour)
	wo, err = svc.AddTimeEntry(ctx, wo.ID, AddTimeEntryInput{
		UserID:       "user-1",
		Date:         testNow,
		StartTime:    testNow,
		EndTime:      &end,
		BreakMinutes: 30,
		IsBillable:   true,
		HourlyRate:   decimal.NewFromInt(600),
	})
	if err != nil {
		t.Fatalf("add time entry: %v", err)
	}
	// 90 billable minutes at 600/h.
	if !wo.LaborCost.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected labor cost 900 got %s", wo.LaborCost)
	}
	if !wo.ActualHours.Equal(decimal.NewFromFloat(1.5)) {
		t.Fatalf("expected actual hours 1.5 got %s", wo.ActualHours)
	}

	wo, err = svc.AddTravel(ctx, wo.ID, AddTravelInput{
		UserID:     "user-1",
		Date:       testNow,
		DistanceKm: decimal.NewFromInt(24),
		Cost:       decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("add travel: %v", err)
	}
	if !wo.TravelCost.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected travel cost 120 got %s", wo.TravelCost)
	}

	want := wo.MaterialCost.Add(wo.LaborCost).Add(wo.TravelCost)
	if !wo.TotalAmount.Equal(want) {
		t.Fatalf("total %s != sum of buckets %s", wo.TotalAmount, want)
	}

	lineID := wo.Materials[1].ID
	wo, err = svc.RemoveMaterialLine(ctx, wo.ID, lineID)
	if err != nil {
		t.Fatalf("remove material: %v", err)
	}
	if !wo.MaterialCost.Equal(decimal.NewFromInt(590)) {
		t.Fatalf("expected material cost 590 after removal got %s", wo.MaterialCost)
	}
	want = wo.MaterialCost.Add(wo.LaborCost).Add(wo.TravelCost)
	if !wo.TotalAmount.Equal(want) {
		t.Fatalf("total %s != sum of buckets %s after removal", wo.TotalAmount, want)
	}

	_, err = svc.RemoveMaterialLine(ctx, wo.ID, "line-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing unknown line, got %v", err)
	}
}

func TestAddLineValidation(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	material := seedMaterial(t, store, "mat-1", decimal.NewFromInt(100))
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	_, err := svc.AddMaterialLine(ctx, wo.ID, AddMaterialLineInput{MaterialID: material.ID, Quantity: decimal.Zero})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero quantity, got %v", err)
	}

	_, err = svc.AddMaterialLine(ctx, wo.ID, AddMaterialLineInput{MaterialID: "mat-missing", Quantity: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown material, got %v", err)
	}

	earlier := testNow.Add(-time.Hour)
	_, err = svc.AddTimeEntry(ctx, wo.ID, AddTimeEntryInput{UserID: "user-1", StartTime: testNow, EndTime: &earlier})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for end before start, got %v", err)
	}

	_, err = svc.AddTravel(ctx, wo.ID, AddTravelInput{UserID: "user-1", Cost: decimal.NewFromInt(-5)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative cost, got %v", err)
	}
}

func TestUpdateAndDeleteWorkOrder(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	ctx := context.Background()

	wo := createWorkOrder(t, svc, customer.ID)

	title := "Replace all entry locks"
	priority := "high"
	updated, err := svc.UpdateWorkOrder(ctx, wo.ID, UpdateWorkOrderInput{Title: &title, Priority: &priority})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title || updated.Priority != model.PriorityHigh {
		t.Fatalf("update not applied: %+v", updated)
	}

	empty := "  "
	_, err = svc.UpdateWorkOrder(ctx, wo.ID, UpdateWorkOrderInput{Title: &empty})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}

	if err := svc.DeleteWorkOrder(ctx, wo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteWorkOrder(ctx, wo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
	if _, err := svc.GetWorkOrder(ctx, wo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestExportOperationsReport(t *testing.T) {
	svc, store := newTestService(t)
	customer := seedCustomer(t, store)
	createWorkOrder(t, svc, customer.ID)

	name, content, err := svc.ExportOperationsReport(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if name != "workorders-20250315-100000.xlsx" {
		t.Fatalf("unexpected file name %s", name)
	}
	if len(content) == 0 {
		t.Fatalf("expected report content")
	}
}
