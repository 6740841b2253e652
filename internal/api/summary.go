package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

type SummaryAPI struct{ c *Client }

func (s SummaryAPI) Totals(ctx context.Context, f models.SummaryFilters) (models.SummaryTotals, error) {
	var out models.SummaryTotals
	err := s.c.get(ctx, "/summary/totals", f.Query(), &out)
	return out, err
}

func (s SummaryAPI) ByPeriod(ctx context.Context, monthID int64) (models.PeriodSummaryResponse, error) {
	var out models.PeriodSummaryResponse
	err := s.c.get(ctx, "/summary/by-period", models.SummaryFilters{MonthID: monthID}.Query(), &out)
	return out, err
}
