package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

func newOrder(id string) *model.WorkOrder {
	return &model.WorkOrder{
		ID:          id,
		OrderNumber: "WO-" + id,
		Title:       "Order " + id,
		Status:      model.WorkOrderStatusAvailable,
	}
}

func TestWorkOrderListNewestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := store.WorkOrders().Create(ctx, newOrder(fmt.Sprintf("wo-%d", i))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	orders, err := store.WorkOrders().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders got %d", len(orders))
	}
	for i, want := range []string{"wo-3", "wo-2", "wo-1"} {
		if orders[i].ID != want {
			t.Fatalf("position %d: expected %s got %s", i, want, orders[i].ID)
		}
	}
}

func TestWorkOrderGetReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	wo := newOrder("wo-1")
	wo.Materials = []model.WorkOrderMaterial{
		{ID: "line-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}
	if err := store.WorkOrders().Create(ctx, wo); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.WorkOrders().Get(ctx, "wo-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Title = "mutated"
	got.Materials[0].Quantity = decimal.NewFromInt(99)

	again, err := store.WorkOrders().Get(ctx, "wo-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Title != "Order wo-1" {
		t.Fatalf("stored order aliased by returned copy: %s", again.Title)
	}
	if !again.Materials[0].Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("stored lines aliased by returned copy: %s", again.Materials[0].Quantity)
	}
}

func TestWorkOrderUpdateAndDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.WorkOrders().Create(ctx, newOrder("wo-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	wo, _ := store.WorkOrders().Get(ctx, "wo-1")
	wo.Status = model.WorkOrderStatusTaken
	if err := store.WorkOrders().Update(ctx, wo); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := store.WorkOrders().Get(ctx, "wo-1")
	if got.Status != model.WorkOrderStatusTaken {
		t.Fatalf("expected taken got %s", got.Status)
	}

	missing := newOrder("wo-missing")
	if err := store.WorkOrders().Update(ctx, missing); !errors.Is(err, repository.ErrNoRows) {
		t.Fatalf("expected ErrNoRows updating unknown order, got %v", err)
	}

	if err := store.WorkOrders().Delete(ctx, "wo-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.WorkOrders().Get(ctx, "wo-1"); !errors.Is(err, repository.ErrNoRows) {
		t.Fatalf("expected ErrNoRows after delete, got %v", err)
	}
	if err := store.WorkOrders().Delete(ctx, "wo-1"); !errors.Is(err, repository.ErrNoRows) {
		t.Fatalf("expected ErrNoRows deleting twice, got %v", err)
	}

	count, err := store.WorkOrders().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected count 0 got %d", count)
	}
}

func TestTxSeesAndCommitsMutations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.Tx(ctx, func(s repository.Store) error {
		if err := s.WorkOrders().Create(ctx, newOrder("wo-1")); err != nil {
			return err
		}
		// The same transaction reads its own write.
		wo, err := s.WorkOrders().Get(ctx, "wo-1")
		if err != nil {
			return err
		}
		wo.Status = model.WorkOrderStatusTaken
		return s.WorkOrders().Update(ctx, wo)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	got, err := store.WorkOrders().Get(ctx, "wo-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.WorkOrderStatusTaken {
		t.Fatalf("expected committed status taken got %s", got.Status)
	}
}

func TestNestedTxReusesCriticalSection(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// A nested Tx must not deadlock on the store mutex.
	err := store.Tx(ctx, func(s repository.Store) error {
		return s.Tx(ctx, func(inner repository.Store) error {
			return inner.WorkOrders().Create(ctx, newOrder("wo-1"))
		})
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}

	if _, err := store.WorkOrders().Get(ctx, "wo-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func TestTxCanceledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Tx(ctx, func(repository.Store) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCustomerCloneIsolatesContacts(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	customer := &model.Customer{
		ID:   "cust-1",
		Type: model.CustomerTypeCompany,
		Name: "Nordic Fastigheter AB",
		Contacts: []model.Contact{
			{ID: "contact-1", CustomerID: "cust-1", FirstName: "Lars", LastName: "Nilsson"},
		},
	}
	if err := store.Customers().Create(ctx, customer); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Customers().Get(ctx, "cust-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Contacts[0].FirstName = "mutated"

	again, _ := store.Customers().Get(ctx, "cust-1")
	if again.Contacts[0].FirstName != "Lars" {
		t.Fatalf("stored contacts aliased by returned copy: %s", again.Contacts[0].FirstName)
	}
}

func TestQuoteCRUD(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	quote := &model.Quote{
		ID:          "q-1",
		QuoteNumber: "Q-2025-001",
		Title:       "Upgrade",
		Status:      model.QuoteStatusDraft,
		Items: []model.QuoteItem{
			{ID: "item-1", QuoteID: "q-1", Description: "Reader", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(2500)},
		},
	}
	if err := store.Quotes().Create(ctx, quote); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Quotes().Get(ctx, "q-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item got %d", len(got.Items))
	}

	got.Status = model.QuoteStatusSent
	if err := store.Quotes().Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	count, err := store.Quotes().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1 got %d", count)
	}

	if err := store.Quotes().Delete(ctx, "q-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Quotes().Get(ctx, "q-1"); !errors.Is(err, repository.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}
