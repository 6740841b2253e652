package tui

import (
	"github.com/kleyson/appz-budget/internal/models"
	"github.com/kleyson/appz-budget/internal/state"
)

type sessionCheckedMsg struct {
	user models.User
	err  error
}

type loginDoneMsg struct {
	token models.Token
	err   error
}

// dataLoadedMsg carries whatever a load fetched. Nil fields were not
// fetched or failed and leave the cache as it is.
type dataLoadedMsg struct {
	months            *[]models.Month
	current           *models.Month
	categories        *[]models.Category
	periods           *[]models.Period
	incomeTypes       *[]models.IncomeType
	expenses          *[]models.Expense
	incomes           *[]models.Income
	totals            *models.SummaryTotals
	categorySummary   *[]models.CategorySummary
	incomeTypeSummary *[]models.IncomeTypeSummary
	periodSummary     *models.PeriodSummaryResponse

	// selectMonth re-runs the default month choice after months arrive.
	selectMonth bool
	err         error
}

type savedMsg struct {
	entity  state.EntityKind
	created bool
	err     error
}

type passwordChangedMsg struct{ err error }

type deletedMsg struct{ err error }

type paidMsg struct {
	amount float64
	err    error
}

type monthToggledMsg struct {
	closing bool
	result  models.MonthCloseResult
	months  *[]models.Month
	err     error
}

type clonedMsg struct {
	result models.CloneResult
	months *[]models.Month
	err    error
}

type reorderedMsg struct {
	index int
	err   error
}
