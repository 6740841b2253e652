package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

type MonthsAPI struct{ c *Client }

func (m MonthsAPI) List(ctx context.Context) ([]models.Month, error) {
	var out []models.Month
	err := m.c.get(ctx, "/months", nil, &out)
	return out, err
}

func (m MonthsAPI) Get(ctx context.Context, id int64) (models.Month, error) {
	var out models.Month
	err := m.c.get(ctx, idPath("/months", id), nil, &out)
	return out, err
}

// Current returns the month containing today, created server-side if absent.
func (m MonthsAPI) Current(ctx context.Context) (models.Month, error) {
	var out models.Month
	err := m.c.get(ctx, "/months/current", nil, &out)
	return out, err
}

func (m MonthsAPI) Create(ctx context.Context, year, month int) (models.Month, error) {
	var out models.Month
	err := m.c.post(ctx, "/months", models.MonthCreate{Year: year, Month: month}, &out)
	return out, err
}

func (m MonthsAPI) Delete(ctx context.Context, id int64) error {
	return m.c.delete(ctx, idPath("/months", id))
}

func (m MonthsAPI) Close(ctx context.Context, id int64) (models.MonthCloseResult, error) {
	var out models.MonthCloseResult
	err := m.c.post(ctx, idPath("/months", id)+"/close", nil, &out)
	return out, err
}

func (m MonthsAPI) Open(ctx context.Context, id int64) (models.MonthCloseResult, error) {
	var out models.MonthCloseResult
	err := m.c.post(ctx, idPath("/months", id)+"/open", nil, &out)
	return out, err
}
