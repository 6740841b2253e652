package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

type IncomesAPI struct{ c *Client }

func (i IncomesAPI) List(ctx context.Context, f models.IncomeFilters) ([]models.Income, error) {
	var out []models.Income
	err := i.c.get(ctx, "/incomes", f.Query(), &out)
	return out, err
}

func (i IncomesAPI) Get(ctx context.Context, id int64) (models.Income, error) {
	var out models.Income
	err := i.c.get(ctx, idPath("/incomes", id), nil, &out)
	return out, err
}

func (i IncomesAPI) Create(ctx context.Context, in models.IncomeCreate) (models.Income, error) {
	var out models.Income
	err := i.c.post(ctx, "/incomes", in, &out)
	return out, err
}

func (i IncomesAPI) Update(ctx context.Context, id int64, in models.IncomeUpdate) (models.Income, error) {
	var out models.Income
	err := i.c.put(ctx, idPath("/incomes", id), in, &out)
	return out, err
}

func (i IncomesAPI) Delete(ctx context.Context, id int64) error {
	return i.c.delete(ctx, idPath("/incomes", id))
}
