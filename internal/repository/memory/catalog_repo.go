package memory

import (
	"context"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type customerRepo struct {
	data *data
}

var _ repository.CustomerRepository = (*customerRepo)(nil)

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, len(r.data.customers))
	for i := range r.data.customers {
		out[i] = cloneCustomer(r.data.customers[i])
	}
	return out, nil
}

func (r *customerRepo) Get(ctx context.Context, id string) (*model.Customer, error) {
	for i := range r.data.customers {
		if r.data.customers[i].ID == id {
			c := cloneCustomer(r.data.customers[i])
			return &c, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	r.data.customers = append([]model.Customer{cloneCustomer(*c)}, r.data.customers...)
	return nil
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	for i := range r.data.customers {
		if r.data.customers[i].ID == c.ID {
			r.data.customers[i] = cloneCustomer(*c)
			return nil
		}
	}
	return repository.ErrNoRows
}

func cloneCustomer(c model.Customer) model.Customer {
	out := c
	out.Contacts = append([]model.Contact(nil), c.Contacts...)
	return out
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	for i := range r.data.customers {
		if r.data.customers[i].ID == id {
			r.data.customers = append(r.data.customers[:i], r.data.customers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoRows
}

type materialRepo struct {
	data *data
}

var _ repository.MaterialRepository = (*materialRepo)(nil)

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	return append([]model.Material(nil), r.data.materials...), nil
}

func (r *materialRepo) Get(ctx context.Context, id string) (*model.Material, error) {
	for i := range r.data.materials {
		if r.data.materials[i].ID == id {
			m := r.data.materials[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	r.data.materials = append([]model.Material{*m}, r.data.materials...)
	return nil
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	for i := range r.data.materials {
		if r.data.materials[i].ID == m.ID {
			r.data.materials[i] = *m
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *materialRepo) Delete(ctx context.Context, id string) error {
	for i := range r.data.materials {
		if r.data.materials[i].ID == id {
			r.data.materials = append(r.data.materials[:i], r.data.materials[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoRows
}

type userRepo struct {
	data *data
}

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User(nil), r.data.users...), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*model.User, error) {
	for i := range r.data.users {
		if r.data.users[i].ID == id {
			u := r.data.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	r.data.users = append(r.data.users, *u)
	return nil
}
