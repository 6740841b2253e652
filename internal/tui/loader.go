package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/api"
	"github.com/kleyson/appz-budget/internal/models"
	"github.com/kleyson/appz-budget/internal/state"
)

// loader runs the sequential fetches behind each reload. Every call is
// awaited before the next one starts.
type loader struct {
	ctx    context.Context
	client *api.Client
	msg    dataLoadedMsg
}

func fetch[T any](l *loader, what string, fn func(context.Context) (T, error)) *T {
	v, err := fn(l.ctx)
	if err != nil {
		if l.msg.err == nil {
			l.msg.err = fmt.Errorf("load %s: %w", what, err)
		}
		return nil
	}
	return &v
}

func (l *loader) settings() {
	l.msg.categories = fetch(l, "categories", l.client.Categories().List)
	l.msg.periods = fetch(l, "periods", l.client.Periods().List)
	l.msg.incomeTypes = fetch(l, "income types", l.client.IncomeTypes().List)
}

func (l *loader) expenses(f models.ExpenseFilters) {
	l.msg.expenses = fetch(l, "expenses", func(ctx context.Context) ([]models.Expense, error) {
		return l.client.Expenses().List(ctx, f)
	})
}

func (l *loader) incomes(f models.IncomeFilters) {
	l.msg.incomes = fetch(l, "incomes", func(ctx context.Context) ([]models.Income, error) {
		return l.client.Incomes().List(ctx, f)
	})
}

func (l *loader) months() {
	l.msg.months = fetch(l, "months", l.client.Months().List)
}

// monthData fetches everything scoped to one month.
func (l *loader) monthData(monthID int64) {
	l.expenses(models.ExpenseFilters{MonthID: monthID})
	l.incomes(models.IncomeFilters{MonthID: monthID})
	sf := models.SummaryFilters{MonthID: monthID}
	l.msg.totals = fetch(l, "totals", func(ctx context.Context) (models.SummaryTotals, error) {
		return l.client.Summary().Totals(ctx, sf)
	})
	l.msg.categorySummary = fetch(l, "category summary", func(ctx context.Context) ([]models.CategorySummary, error) {
		return l.client.Categories().Summary(ctx, monthID)
	})
	l.msg.incomeTypeSummary = fetch(l, "income type summary", func(ctx context.Context) ([]models.IncomeTypeSummary, error) {
		return l.client.IncomeTypes().Summary(ctx, sf)
	})
	l.msg.periodSummary = fetch(l, "period summary", func(ctx context.Context) (models.PeriodSummaryResponse, error) {
		return l.client.Summary().ByPeriod(ctx, monthID)
	})
}

// initial loads months, picks the default month, then the reference lists
// and that month's data.
func (l *loader) initial() {
	l.months()
	l.msg.current = fetch(l, "current month", l.client.Months().Current)
	l.msg.selectMonth = true
	l.settings()

	var months []models.Month
	if l.msg.months != nil {
		months = *l.msg.months
	}
	var monthID int64
	if idx := state.DefaultMonthIndex(months, l.msg.current); idx < len(months) {
		monthID = months[idx].ID
	}
	l.monthData(monthID)
}

func loadCmd(ctx context.Context, c *api.Client, run func(*loader)) tea.Cmd {
	return func() tea.Msg {
		l := &loader{ctx: ctx, client: c}
		run(l)
		return l.msg
	}
}
