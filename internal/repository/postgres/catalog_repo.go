package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type customerRepo struct {
	db *gorm.DB
}

var _ repository.CustomerRepository = (*customerRepo)(nil)

type customerRow struct {
	ID           string
	Type         string
	Name         string
	OrgNumber    *string
	PersonNumber *string
	Street       string
	PostalCode   string
	City         string
	Country      string
	Email        string
	Phone        string
	Website      *string
	PaymentTerms *int
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const customerColumns = `
	id, type, name, org_number, person_number,
	street, postal_code, city, country,
	email, phone, website, payment_terms, notes, created_at, updated_at
`

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var rows []customerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY position DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(rows))
	for i := range rows {
		c, err := r.hydrate(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, nil
}

func (r *customerRepo) Get(ctx context.Context, id string) (*model.Customer, error) {
	var row customerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, repository.ErrNoRows
	}
	return r.hydrate(ctx, &row)
}

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO customers (
			id, type, name, org_number, person_number,
			street, postal_code, city, country,
			email, phone, website, payment_terms, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.Type, c.Name, c.OrgNumber, c.PersonNumber,
		c.Address.Street, c.Address.PostalCode, c.Address.City, c.Address.Country,
		c.Email, c.Phone, c.Website, c.PaymentTerms, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Error
	if err != nil {
		return err
	}
	return r.replaceContacts(ctx, c)
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE customers SET
			type = ?, name = ?, org_number = ?, person_number = ?,
			street = ?, postal_code = ?, city = ?, country = ?,
			email = ?, phone = ?, website = ?, payment_terms = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`,
		c.Type, c.Name, c.OrgNumber, c.PersonNumber,
		c.Address.Street, c.Address.PostalCode, c.Address.City, c.Address.Country,
		c.Email, c.Phone, c.Website, c.PaymentTerms, c.Notes, c.UpdatedAt,
		c.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return r.replaceContacts(ctx, c)
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM customers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (r *customerRepo) replaceContacts(ctx context.Context, c *model.Customer) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec(`DELETE FROM contacts WHERE customer_id = ?`, c.ID).Error; err != nil {
		return err
	}
	for _, contact := range c.Contacts {
		if err := db.Exec(`
			INSERT INTO contacts (id, customer_id, first_name, last_name, email, phone, mobile, title, is_primary, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, contact.ID, c.ID, contact.FirstName, contact.LastName, contact.Email, contact.Phone,
			contact.Mobile, contact.Title, contact.IsPrimary, contact.CreatedAt, contact.UpdatedAt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *customerRepo) hydrate(ctx context.Context, row *customerRow) (*model.Customer, error) {
	c := &model.Customer{
		ID:           row.ID,
		Type:         model.CustomerType(row.Type),
		Name:         row.Name,
		OrgNumber:    row.OrgNumber,
		PersonNumber: row.PersonNumber,
		Address: model.Address{
			Street:     row.Street,
			PostalCode: row.PostalCode,
			City:       row.City,
			Country:    row.Country,
		},
		Email:        row.Email,
		Phone:        row.Phone,
		Website:      row.Website,
		PaymentTerms: row.PaymentTerms,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, email, phone, mobile, title, is_primary, created_at, updated_at
		FROM contacts WHERE customer_id = ? ORDER BY is_primary DESC, created_at
	`, c.ID).Scan(&c.Contacts).Error
	if err != nil {
		return nil, err
	}
	for i := range c.Contacts {
		c.Contacts[i].CustomerID = c.ID
	}
	return c, nil
}

type materialRepo struct {
	db *gorm.DB
}

var _ repository.MaterialRepository = (*materialRepo)(nil)

type materialRow struct {
	ID                    string
	ArticleNumber         string
	Name                  string
	Description           string
	Unit                  string
	Price                 decimal.Decimal
	PurchasePrice         decimal.NullDecimal
	Supplier              string
	SupplierArticleNumber *string
	Category              string
	Subcategory           *string
	StockQuantity         decimal.NullDecimal
	MinStockLevel         decimal.NullDecimal
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

const materialColumns = `
	id, article_number, name, description, unit, price, purchase_price,
	supplier, supplier_article_number, category, subcategory,
	stock_quantity, min_stock_level, is_active, created_at, updated_at
`

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var rows []materialRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + materialColumns + `
		FROM materials
		ORDER BY position DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	materials := make([]model.Material, 0, len(rows))
	for i := range rows {
		materials = append(materials, rows[i].toModel())
	}
	return materials, nil
}

func (r *materialRepo) Get(ctx context.Context, id string) (*model.Material, error) {
	var row materialRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+materialColumns+`
		FROM materials
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, repository.ErrNoRows
	}
	m := row.toModel()
	return &m, nil
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO materials (
			id, article_number, name, description, unit, price, purchase_price,
			supplier, supplier_article_number, category, subcategory,
			stock_quantity, min_stock_level, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID, m.ArticleNumber, m.Name, m.Description, m.Unit, m.Price, m.PurchasePrice,
		m.Supplier, m.SupplierArticleNumber, m.Category, m.Subcategory,
		m.StockQuantity, m.MinStockLevel, m.IsActive, m.CreatedAt, m.UpdatedAt,
	).Error
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE materials SET
			article_number = ?, name = ?, description = ?, unit = ?, price = ?, purchase_price = ?,
			supplier = ?, supplier_article_number = ?, category = ?, subcategory = ?,
			stock_quantity = ?, min_stock_level = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`,
		m.ArticleNumber, m.Name, m.Description, m.Unit, m.Price, m.PurchasePrice,
		m.Supplier, m.SupplierArticleNumber, m.Category, m.Subcategory,
		m.StockQuantity, m.MinStockLevel, m.IsActive, m.UpdatedAt,
		m.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (r *materialRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM materials WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (row materialRow) toModel() model.Material {
	m := model.Material{
		ID:                    row.ID,
		ArticleNumber:         row.ArticleNumber,
		Name:                  row.Name,
		Description:           row.Description,
		Unit:                  row.Unit,
		Price:                 row.Price,
		Supplier:              model.SupplierType(row.Supplier),
		SupplierArticleNumber: row.SupplierArticleNumber,
		Category:              row.Category,
		Subcategory:           row.Subcategory,
		IsActive:              row.IsActive,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
	if row.PurchasePrice.Valid {
		m.PurchasePrice = &row.PurchasePrice.Decimal
	}
	if row.StockQuantity.Valid {
		m.StockQuantity = &row.StockQuantity.Decimal
	}
	if row.MinStockLevel.Valid {
		m.MinStockLevel = &row.MinStockLevel.Decimal
	}
	return m
}

type userRepo struct {
	db *gorm.DB
}

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, first_name, last_name, role, phone, is_active, created_at, last_login
		FROM users
		ORDER BY created_at
	`).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, first_name, last_name, role, phone, is_active, created_at, last_login
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, repository.ErrNoRows
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO users (id, email, first_name, last_name, role, phone, is_active, created_at, last_login)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.Phone, u.IsActive, u.CreatedAt, u.LastLogin).Error
}
