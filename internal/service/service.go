package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/config"
	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type ReportGenerator interface {
	Generate(report model.OperationsReport) ([]byte, error)
}

type QuotePDFGenerator interface {
	Generate(quote model.Quote) ([]byte, error)
}

// Service implements the work-order/quote lifecycle on top of the collection
// store. Every operation runs inside one store transaction together with the
// aggregate recomputation it triggers.
type Service struct {
	store repository.Store
	excel ReportGenerator
	pdf   QuotePDFGenerator
	log   zerolog.Logger

	defaultVAT decimal.Decimal

	now   func() time.Time
	newID func() string
}

func New(store repository.Store, excel ReportGenerator, pdf QuotePDFGenerator, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		store:      store,
		excel:      excel,
		pdf:        pdf,
		log:        log,
		defaultVAT: decimal.NewFromFloat(cfg.Orders.DefaultVATPercent),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// nextOrderNumber issues the sequential, year-scoped number shared by direct
// creation and quote conversion: WO-<year>-<NNN> with NNN = count + 1.
func (s *Service) nextOrderNumber(count int) string {
	return fmt.Sprintf("WO-%d-%03d", s.now().Year(), count+1)
}

func (s *Service) nextQuoteNumber(count int) string {
	return fmt.Sprintf("Q-%d-%03d", s.now().Year(), count+1)
}

func mapStoreErr(err error, what, id string) error {
	if errors.Is(err, repository.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, what, id)
	}
	return err
}

// ListUsers exposes the known user set for assignee pickers.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		users, err = store.Users().List(ctx)
		return err
	})
	return users, err
}

// snapshotCustomer resolves the customer and optional contact referenced by a
// work order or quote and returns copies to embed. The snapshot is taken at
// write time and never refreshed.
func (s *Service) snapshotCustomer(ctx context.Context, store repository.Store, customerID string, contactID *string) (model.Customer, *model.Contact, error) {
	customer, err := store.Customers().Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, nil, mapStoreErr(err, "customer", customerID)
	}
	if contactID == nil {
		return *customer, nil, nil
	}
	for i := range customer.Contacts {
		if customer.Contacts[i].ID == *contactID {
			contact := customer.Contacts[i]
			return *customer, &contact, nil
		}
	}
	return model.Customer{}, nil, fmt.Errorf("%w: contact %s", ErrNotFound, *contactID)
}
