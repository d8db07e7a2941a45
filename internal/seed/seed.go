// Package seed loads a small demo dataset into the store. It is meant for
// development runs against the in-memory store and is gated by
// ORDERS_SEED_DEMO.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

func Demo(ctx context.Context, store repository.Store) error {
	now := time.Now().UTC()

	return store.Tx(ctx, func(s repository.Store) error {
		users := []model.User{
			{
				ID:        uuid.NewString(),
				Email:     "admin@fieldflow.local",
				FirstName: "Anna",
				LastName:  "Lindqvist",
				Role:      model.UserRoleAdmin,
				IsActive:  true,
				CreatedAt: now,
			},
			{
				ID:        uuid.NewString(),
				Email:     "erik@fieldflow.local",
				FirstName: "Erik",
				LastName:  "Johansson",
				Role:      model.UserRoleTechnician,
				IsActive:  true,
				CreatedAt: now,
			},
			{
				ID:        uuid.NewString(),
				Email:     "maria@fieldflow.local",
				FirstName: "Maria",
				LastName:  "Berg",
				Role:      model.UserRoleManager,
				IsActive:  true,
				CreatedAt: now,
			},
		}
		for i := range users {
			if err := s.Users().Create(ctx, &users[i]); err != nil {
				return err
			}
		}

		orgNumber := "556677-8899"
		contactTitle := "Facilities Manager"
		customer := model.Customer{
			ID:        uuid.NewString(),
			Type:      model.CustomerTypeCompany,
			Name:      "Nordic Fastigheter AB",
			OrgNumber: &orgNumber,
			Address: model.Address{
				Street:     "Storgatan 12",
				PostalCode: "111 51",
				City:       "Stockholm",
				Country:    "Sweden",
			},
			Email:     "info@nordicfastigheter.se",
			Phone:     "+46 8 123 456",
			CreatedAt: now,
			UpdatedAt: now,
		}
		customer.Contacts = []model.Contact{
			{
				ID:         uuid.NewString(),
				CustomerID: customer.ID,
				FirstName:  "Lars",
				LastName:   "Nilsson",
				Email:      "lars.nilsson@nordicfastigheter.se",
				Phone:      "+46 8 123 457",
				Title:      &contactTitle,
				IsPrimary:  true,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
		if err := s.Customers().Create(ctx, &customer); err != nil {
			return err
		}

		personNumber := "19820415-1234"
		private := model.Customer{
			ID:           uuid.NewString(),
			Type:         model.CustomerTypePrivate,
			Name:         "Karin Svensson",
			PersonNumber: &personNumber,
			Address: model.Address{
				Street:     "Bjorkvagen 3",
				PostalCode: "181 30",
				City:       "Lidingo",
				Country:    "Sweden",
			},
			Email:     "karin.svensson@example.com",
			Phone:     "+46 70 987 654",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Customers().Create(ctx, &private); err != nil {
			return err
		}

		purchase := decimal.NewFromFloat(180)
		materials := []model.Material{
			{
				ID:            uuid.NewString(),
				ArticleNumber: "ASSA-2002",
				Name:          "ASSA 2002 cylinder lock",
				Unit:          "pcs",
				Price:         decimal.NewFromFloat(295),
				PurchasePrice: &purchase,
				Supplier:      model.SupplierAhlsell,
				Category:      "Locks",
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			{
				ID:            uuid.NewString(),
				ArticleNumber: "CX-4410",
				Name:          "Door closer, heavy duty",
				Unit:          "pcs",
				Price:         decimal.NewFromFloat(890),
				Supplier:      model.SupplierCopiax,
				Category:      "Door hardware",
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			{
				ID:            uuid.NewString(),
				ArticleNumber: "MISC-001",
				Name:          "Mounting kit",
				Unit:          "set",
				Price:         decimal.NewFromFloat(120),
				Supplier:      model.SupplierCustom,
				Category:      "Consumables",
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}
		for i := range materials {
			if err := s.Materials().Create(ctx, &materials[i]); err != nil {
				return err
			}
		}

		return nil
	})
}
