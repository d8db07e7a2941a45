package memory

import (
	"context"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type quoteRepo struct {
	data *data
}

var _ repository.QuoteRepository = (*quoteRepo)(nil)

func (r *quoteRepo) List(ctx context.Context) ([]model.Quote, error) {
	out := make([]model.Quote, len(r.data.quotes))
	for i := range r.data.quotes {
		out[i] = cloneQuote(r.data.quotes[i])
	}
	return out, nil
}

func (r *quoteRepo) Get(ctx context.Context, id string) (*model.Quote, error) {
	for i := range r.data.quotes {
		if r.data.quotes[i].ID == id {
			q := cloneQuote(r.data.quotes[i])
			return &q, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (r *quoteRepo) Create(ctx context.Context, q *model.Quote) error {
	r.data.quotes = append([]model.Quote{cloneQuote(*q)}, r.data.quotes...)
	return nil
}

func (r *quoteRepo) Update(ctx context.Context, q *model.Quote) error {
	for i := range r.data.quotes {
		if r.data.quotes[i].ID == q.ID {
			r.data.quotes[i] = cloneQuote(*q)
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *quoteRepo) Delete(ctx context.Context, id string) error {
	for i := range r.data.quotes {
		if r.data.quotes[i].ID == id {
			r.data.quotes = append(r.data.quotes[:i], r.data.quotes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *quoteRepo) Count(ctx context.Context) (int, error) {
	return len(r.data.quotes), nil
}

func cloneQuote(q model.Quote) model.Quote {
	out := q
	out.Items = append([]model.QuoteItem(nil), q.Items...)
	return out
}
