package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type CreateMaterialInput struct {
	ArticleNumber         string
	Name                  string
	Description           string
	Unit                  string
	Price                 decimal.Decimal
	PurchasePrice         *decimal.Decimal
	Supplier              string
	SupplierArticleNumber *string
	Category              string
	Subcategory           *string
	StockQuantity         *decimal.Decimal
	MinStockLevel         *decimal.Decimal
}

type UpdateMaterialInput struct {
	ArticleNumber *string
	Name          *string
	Description   *string
	Unit          *string
	Price         *decimal.Decimal
	PurchasePrice *decimal.Decimal
	Category      *string
	Subcategory   *string
	StockQuantity *decimal.Decimal
	MinStockLevel *decimal.Decimal
	IsActive      *bool
}

func (s *Service) ListMaterials(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := s.store.Tx(ctx, func(store repository.Store) error {
		var err error
		materials, err = store.Materials().List(ctx)
		return err
	})
	return materials, err
}

func (s *Service) CreateMaterial(ctx context.Context, input CreateMaterialInput) (*model.Material, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	supplier, err := parseSupplier(input.Supplier)
	if err != nil {
		return nil, err
	}

	var created *model.Material
	err = s.store.Tx(ctx, func(store repository.Store) error {
		now := s.now()
		m := model.Material{
			ID:                    s.newID(),
			ArticleNumber:         input.ArticleNumber,
			Name:                  input.Name,
			Description:           input.Description,
			Unit:                  input.Unit,
			Price:                 input.Price,
			PurchasePrice:         input.PurchasePrice,
			Supplier:              supplier,
			SupplierArticleNumber: input.SupplierArticleNumber,
			Category:              input.Category,
			Subcategory:           input.Subcategory,
			StockQuantity:         input.StockQuantity,
			MinStockLevel:         input.MinStockLevel,
			IsActive:              true,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := store.Materials().Create(ctx, &m); err != nil {
			return err
		}
		created = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateMaterial(ctx context.Context, id string, input UpdateMaterialInput) (*model.Material, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if input.Price != nil && input.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	var updated *model.Material
	err := s.store.Tx(ctx, func(store repository.Store) error {
		m, err := store.Materials().Get(ctx, id)
		if err != nil {
			return mapStoreErr(err, "material", id)
		}
		if input.ArticleNumber != nil {
			m.ArticleNumber = *input.ArticleNumber
		}
		if input.Name != nil {
			m.Name = *input.Name
		}
		if input.Description != nil {
			m.Description = *input.Description
		}
		if input.Unit != nil {
			m.Unit = *input.Unit
		}
		if input.Price != nil {
			m.Price = *input.Price
		}
		if input.PurchasePrice != nil {
			m.PurchasePrice = input.PurchasePrice
		}
		if input.Category != nil {
			m.Category = *input.Category
		}
		if input.Subcategory != nil {
			m.Subcategory = input.Subcategory
		}
		if input.StockQuantity != nil {
			m.StockQuantity = input.StockQuantity
		}
		if input.MinStockLevel != nil {
			m.MinStockLevel = input.MinStockLevel
		}
		if input.IsActive != nil {
			m.IsActive = *input.IsActive
		}
		m.UpdatedAt = s.now()
		if err := store.Materials().Update(ctx, m); err != nil {
			return mapStoreErr(err, "material", id)
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	return s.store.Tx(ctx, func(store repository.Store) error {
		if err := store.Materials().Delete(ctx, id); err != nil {
			return mapStoreErr(err, "material", id)
		}
		return nil
	})
}

func parseSupplier(raw string) (model.SupplierType, error) {
	if raw == "" {
		return model.SupplierCustom, nil
	}
	switch t := model.SupplierType(raw); t {
	case model.SupplierAhlsell, model.SupplierCopiax, model.SupplierCustom:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown supplier %q", ErrValidation, raw)
	}
}
