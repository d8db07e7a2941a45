package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

// Store backs the collection store with postgres. Tx maps onto a database
// transaction, which makes each service operation atomic with its triggered
// recomputation, same as the memory store's critical section.
type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Tx(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) WorkOrders() repository.WorkOrderRepository { return &workOrderRepo{db: s.db} }
func (s *Store) Quotes() repository.QuoteRepository         { return &quoteRepo{db: s.db} }
func (s *Store) Customers() repository.CustomerRepository   { return &customerRepo{db: s.db} }
func (s *Store) Materials() repository.MaterialRepository   { return &materialRepo{db: s.db} }
func (s *Store) Users() repository.UserRepository           { return &userRepo{db: s.db} }

func marshalJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(raw), nil
}

func unmarshalCustomer(raw string) (model.Customer, error) {
	var c model.Customer
	if raw == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return c, fmt.Errorf("unmarshal customer snapshot: %w", err)
	}
	return c, nil
}

func unmarshalContact(raw *string) (*model.Contact, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var c model.Contact
	if err := json.Unmarshal([]byte(*raw), &c); err != nil {
		return nil, fmt.Errorf("unmarshal contact snapshot: %w", err)
	}
	return &c, nil
}

func marshalContact(c *model.Contact) (*string, error) {
	if c == nil {
		return nil, nil
	}
	raw, err := marshalJSON(c)
	if err != nil {
		return nil, err
	}
	return &raw, nil
}
