package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SupplierType string

const (
	SupplierAhlsell SupplierType = "ahlsell"
	SupplierCopiax  SupplierType = "copiax"
	SupplierCustom  SupplierType = "custom"
)

type Material struct {
	ID                    string           `json:"id"`
	ArticleNumber         string           `json:"articleNumber"`
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	Unit                  string           `json:"unit"`
	Price                 decimal.Decimal  `json:"price"`
	PurchasePrice         *decimal.Decimal `json:"purchasePrice,omitempty"`
	Supplier              SupplierType     `json:"supplier"`
	SupplierArticleNumber *string          `json:"supplierArticleNumber,omitempty"`
	Category              string           `json:"category"`
	Subcategory           *string          `json:"subcategory,omitempty"`
	StockQuantity         *decimal.Decimal `json:"stockQuantity,omitempty"`
	MinStockLevel         *decimal.Decimal `json:"minStockLevel,omitempty"`
	IsActive              bool             `json:"isActive"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}
