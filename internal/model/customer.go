package model

import "time"

type CustomerType string

const (
	CustomerTypeCompany CustomerType = "company"
	CustomerTypePrivate CustomerType = "private"
)

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

type Customer struct {
	ID           string       `json:"id"`
	Type         CustomerType `json:"type"`
	Name         string       `json:"name"`
	OrgNumber    *string      `json:"orgNumber,omitempty"`
	PersonNumber *string      `json:"personNumber,omitempty"`
	Address      Address      `json:"address"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Website      *string      `json:"website,omitempty"`
	PaymentTerms *int         `json:"paymentTerms,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Contacts     []Contact    `json:"contacts,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Contact struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Mobile     *string   `json:"mobile,omitempty"`
	Title      *string   `json:"title,omitempty"`
	IsPrimary  bool      `json:"isPrimary"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
