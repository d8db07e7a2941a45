package memory

import (
	"context"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/repository"
)

type workOrderRepo struct {
	data *data
}

var _ repository.WorkOrderRepository = (*workOrderRepo)(nil)

func (r *workOrderRepo) List(ctx context.Context) ([]model.WorkOrder, error) {
	out := make([]model.WorkOrder, len(r.data.workOrders))
	for i := range r.data.workOrders {
		out[i] = cloneWorkOrder(r.data.workOrders[i])
	}
	return out, nil
}

func (r *workOrderRepo) Get(ctx context.Context, id string) (*model.WorkOrder, error) {
	for i := range r.data.workOrders {
		if r.data.workOrders[i].ID == id {
			wo := cloneWorkOrder(r.data.workOrders[i])
			return &wo, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (r *workOrderRepo) Create(ctx context.Context, wo *model.WorkOrder) error {
	r.data.workOrders = append([]model.WorkOrder{cloneWorkOrder(*wo)}, r.data.workOrders...)
	return nil
}

func (r *workOrderRepo) Update(ctx context.Context, wo *model.WorkOrder) error {
	for i := range r.data.workOrders {
		if r.data.workOrders[i].ID == wo.ID {
			r.data.workOrders[i] = cloneWorkOrder(*wo)
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *workOrderRepo) Delete(ctx context.Context, id string) error {
	for i := range r.data.workOrders {
		if r.data.workOrders[i].ID == id {
			r.data.workOrders = append(r.data.workOrders[:i], r.data.workOrders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *workOrderRepo) Count(ctx context.Context) (int, error) {
	return len(r.data.workOrders), nil
}

// cloneWorkOrder copies the order together with its owned collections so
// callers never alias the stored slices.
func cloneWorkOrder(wo model.WorkOrder) model.WorkOrder {
	out := wo
	out.Materials = append([]model.WorkOrderMaterial(nil), wo.Materials...)
	out.Travels = append([]model.Travel(nil), wo.Travels...)
	out.TimeEntries = append([]model.TimeEntry(nil), wo.TimeEntries...)
	out.Images = append([]model.WorkOrderImage(nil), wo.Images...)
	out.Documents = append([]model.WorkOrderDocument(nil), wo.Documents...)
	return out
}
