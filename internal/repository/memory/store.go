package memory

import (
	"context"
	"sync"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

// Store keeps all collections resident in memory. Collections are ordered
// newest-first, matching insertion order. A single mutex taken in Tx
// serializes every operation; the repositories themselves do not lock,
// callers are expected to reach them through Tx.
type Store struct {
	mu   sync.Mutex
	data *data
}

type data struct {
	workOrders []model.WorkOrder
	quotes     []model.Quote
	customers  []model.Customer
	materials  []model.Material
	users      []model.User
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: &data{}}
}

func (s *Store) Tx(ctx context.Context, fn func(repository.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txStore{data: s.data})
}

func (s *Store) WorkOrders() repository.WorkOrderRepository { return &workOrderRepo{data: s.data} }
func (s *Store) Quotes() repository.QuoteRepository         { return &quoteRepo{data: s.data} }
func (s *Store) Customers() repository.CustomerRepository   { return &customerRepo{data: s.data} }
func (s *Store) Materials() repository.MaterialRepository   { return &materialRepo{data: s.data} }
func (s *Store) Users() repository.UserRepository           { return &userRepo{data: s.data} }

// txStore is the view handed to Tx callbacks. Nested Tx calls run in the
// already-held critical section.
type txStore struct {
	data *data
}

var _ repository.Store = (*txStore)(nil)

func (t *txStore) Tx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(t)
}

func (t *txStore) WorkOrders() repository.WorkOrderRepository { return &workOrderRepo{data: t.data} }
func (t *txStore) Quotes() repository.QuoteRepository         { return &quoteRepo{data: t.data} }
func (t *txStore) Customers() repository.CustomerRepository   { return &customerRepo{data: t.data} }
func (t *txStore) Materials() repository.MaterialRepository   { return &materialRepo{data: t.data} }
func (t *txStore) Users() repository.UserRepository           { return &userRepo{data: t.data} }
