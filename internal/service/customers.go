package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Mobile    *string
	Title     *string
	IsPrimary bool
}

type CreateCustomerInput struct {
	Type         string
	Name         string
	OrgNumber    *string
	PersonNumber *string
	Address      model.Address
	Email        string
	Phone        string
	Website      *string
	PaymentTerms *int
	Notes        string
	Contacts     []ContactInput
}

type UpdateCustomerInput struct {
	Name         *string
	OrgNumber    *string
	PersonNumber *string
	Address      *model.Address
	Email        *string
	Phone        *string
	Website      *string
	PaymentTerms *int
	Notes        *string
	Contacts     []ContactInput // non-nil replaces all contacts
}

func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		customers, err = store.Customers().List(ctx)
		return err
	})
	return customers, err
}

func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*model.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	ctype, err := parseCustomerType(input.Type)
	if err != nil {
		return nil, err
	}

	var created *model.Customer
	err = s.store.Tx(ctx, func(store repository.Store) error {
		now := s.now()
		c := model.Customer{
			ID:           s.newID(),
			Type:         ctype,
			Name:         input.Name,
			OrgNumber:    input.OrgNumber,
			PersonNumber: input.PersonNumber,
			Address:      input.Address,
			Email:        input.Email,
			Phone:        input.Phone,
			Website:      input.Website,
			PaymentTerms: input.PaymentTerms,
			Notes:        input.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		c.Contacts = s.buildContacts(c.ID, input.Contacts)
		if err := store.Customers().Create(ctx, &c); err != nil {
			return err
		}
		created = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, input UpdateCustomerInput) (*model.Customer, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	var updated *model.Customer
	err := s.store.Tx(ctx, func(store repository.Store) error {
		c, err := store.Customers().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "customer", id)
		}
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.OrgNumber != nil {
			c.OrgNumber = input.OrgNumber
		}
		if input.PersonNumber != nil {
			c.PersonNumber = input.PersonNumber
		}
		if input.Address != nil {
			c.Address = *input.Address
		}
		if input.Email != nil {
			c.Email = *input.Email
		}
		if input.Phone != nil {
			c.Phone = *input.Phone
		}
		if input.Website != nil {
			c.Website = input.Website
		}
		if input.PaymentTerms != nil {
			c.PaymentTerms = input.PaymentTerms
		}
		if input.Notes != nil {
			c.Notes = *input.Notes
		}
		if input.Contacts != nil {
			c.Contacts = s.buildContacts(c.ID, input.Contacts)
		}
		c.UpdatedAt = s.now()
		if err := store.Customers().Update(ctx, c); err != nil {
			return mapStoreErr(err, "customer", id)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return s.store.Tx(ctx, func(store repository.Store) error {
		if err := store.Customers().Delete(ctx, id); err != nil {
			return mapStoreErr(err, "customer", id)
		}
		return nil
	})
}

func (s *Service) buildContacts(customerID string, inputs []ContactInput) []model.Contact {
	now := s.now()
	contacts := make([]model.Contact, 0, len(inputs))
	for _, in := range inputs {
		contacts = append(contacts, model.Contact{
			ID:         s.newID(),
			CustomerID: customerID,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Phone:      in.Phone,
			Mobile:     in.Mobile,
			Title:      in.Title,
			IsPrimary:  in.IsPrimary,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return contacts
}

func parseCustomerType(raw string) (model.CustomerType, error) {
	if raw == "" {
		return model.CustomerTypeCompany, nil
	}
	switch t := model.CustomerType(raw); t {
	case model.CustomerTypeCompany, model.CustomerTypePrivate:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown customer type %q", ErrValidation, raw)
	}
}
