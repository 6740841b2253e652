package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

// named is the CRUD surface shared by categories, periods and income types.
type named[T any] struct {
	c    *Client
	path string
}

func (n named[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := n.c.get(ctx, n.path, nil, &out)
	return out, err
}

func (n named[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := n.c.get(ctx, idPath(n.path, id), nil, &out)
	return out, err
}

func (n named[T]) Create(ctx context.Context, in models.NamedCreate) (T, error) {
	var out T
	err := n.c.post(ctx, n.path, in, &out)
	return out, err
}

func (n named[T]) Update(ctx context.Context, id int64, in models.NamedUpdate) (T, error) {
	var out T
	err := n.c.put(ctx, idPath(n.path, id), in, &out)
	return out, err
}

func (n named[T]) Delete(ctx context.Context, id int64) error {
	return n.c.delete(ctx, idPath(n.path, id))
}

type CategoriesAPI struct{ named[models.Category] }

func (c CategoriesAPI) Summary(ctx context.Context, monthID int64) ([]models.CategorySummary, error) {
	var out []models.CategorySummary
	err := c.c.get(ctx, c.path+"/summary", models.SummaryFilters{MonthID: monthID}.Query(), &out)
	return out, err
}

type PeriodsAPI struct{ named[models.Period] }

type IncomeTypesAPI struct{ named[models.IncomeType] }

func (i IncomeTypesAPI) Summary(ctx context.Context, f models.SummaryFilters) ([]models.IncomeTypeSummary, error) {
	var out []models.IncomeTypeSummary
	err := i.c.get(ctx, i.path+"/summary", f.Query(), &out)
	return out, err
}

