package repository

import (
	"context"
	"errors"

	"github.com/arvelin/fieldflow/internal/model"
)

// Store is the collection store behind all mutation and query entry points.
// Tx is the single atomicity boundary: every service operation, including its
// triggered recomputations, runs inside one Tx call so a concurrent reader
// never observes a half-applied mutation. Implementations serialize Tx
// (mutex for the memory store, database transaction for postgres); the
// repository methods themselves assume they run inside Tx.
type Store interface {
	WorkOrders() WorkOrderRepository
	Quotes() QuoteRepository
	Customers() CustomerRepository
	Materials() MaterialRepository
	Users() UserRepository

	Tx(ctx context.Context, fn func(Store) error) error
}

// WorkOrderRepository lists orders newest-first by insertion order.
type WorkOrderRepository interface {
	List(ctx context.Context) ([]model.WorkOrder, error)
	Get(ctx context.Context, id string) (*model.WorkOrder, error)
	Create(ctx context.Context, wo *model.WorkOrder) error
	Update(ctx context.Context, wo *model.WorkOrder) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type QuoteRepository interface {
	List(ctx context.Context) ([]model.Quote, error)
	Get(ctx context.Context, id string) (*model.Quote, error)
	Create(ctx context.Context, q *model.Quote) error
	Update(ctx context.Context, q *model.Quote) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id string) error
}

type MaterialRepository interface {
	List(ctx context.Context) ([]model.Material, error)
	Get(ctx context.Context, id string) (*model.Material, error)
	Create(ctx context.Context, m *model.Material) error
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// ErrNoRows is returned by Get/Update/Delete when the id does not resolve.
// The service layer maps it onto its public error taxonomy.
var ErrNoRows = errors.New("repository: no rows")
