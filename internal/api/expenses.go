package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

type ExpensesAPI struct{ c *Client }

func (e ExpensesAPI) List(ctx context.Context, f models.ExpenseFilters) ([]models.Expense, error) {
	var out []models.Expense
	err := e.c.get(ctx, "/expenses", f.Query(), &out)
	return out, err
}

func (e ExpensesAPI) Get(ctx context.Context, id int64) (models.Expense, error) {
	var out models.Expense
	err := e.c.get(ctx, idPath("/expenses", id), nil, &out)
	return out, err
}

func (e ExpensesAPI) Create(ctx context.Context, in models.ExpenseCreate) (models.Expense, error) {
	var out models.Expense
	err := e.c.post(ctx, "/expenses", in, &out)
	return out, err
}

func (e ExpensesAPI) Update(ctx context.Context, id int64, in models.ExpenseUpdate) (models.Expense, error) {
	var out models.Expense
	err := e.c.put(ctx, idPath("/expenses", id), in, &out)
	return out, err
}

func (e ExpensesAPI) Delete(ctx context.Context, id int64) error {
	return e.c.delete(ctx, idPath("/expenses", id))
}

// Reorder persists the display order given by ids.
func (e ExpensesAPI) Reorder(ctx context.Context, ids []int64) error {
	return e.c.post(ctx, "/expenses/reorder", models.ExpenseReorder{ExpenseIDs: ids}, nil)
}

// CloneToNextMonth copies the month's expenses and incomes into the
// following month, creating it when needed.
func (e ExpensesAPI) CloneToNextMonth(ctx context.Context, monthID int64) (models.CloneResult, error) {
	var out models.CloneResult
	err := e.c.post(ctx, idPath("/expenses/clone-to-next-month", monthID), nil, &out)
	return out, err
}

// Pay records a payment as a purchase. A nil amount pays the full budget.
func (e ExpensesAPI) Pay(ctx context.Context, id int64, amount *float64) (models.Expense, error) {
	var out models.Expense
	err := e.c.post(ctx, idPath("/expenses", id)+"/pay", models.PayRequest{Amount: amount}, &out)
	return out, err
}
