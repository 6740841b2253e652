// Package state is the single application-state aggregate: which screen,
// tab and modal are showing, the resource caches, list selections and
// filters. It is owned and mutated by the dispatch loop only.
package state

import (
	"fmt"

	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/models"
)

// Data holds server snapshots. Every collection is replaced whole on a
// successful fetch and left untouched on failure.
type Data struct {
	Expenses    []models.Expense
	Incomes     []models.Income
	Categories  []models.Category
	Periods     []models.Period
	IncomeTypes []models.IncomeType
	Months      []models.Month

	CurrentMonth      *models.Month
	Totals            *models.SummaryTotals
	CategorySummary   []models.CategorySummary
	IncomeTypeSummary []models.IncomeTypeSummary
	PeriodSummary     *models.PeriodSummaryResponse
}

// Message is the single transient status line.
type Message struct {
	Text    string
	IsError bool
}

type State struct {
	Screen      Screen
	Tab         Tab
	SettingsTab SettingsTab

	User *models.User
	Data Data

	MonthIndex     int
	ExpenseSel     int
	IncomeSel      int
	CategorySel    int
	PeriodSel      int
	IncomeTypeSel  int
	PeriodFilter   string
	CategoryFilter string

	Modal   Modal
	Message Message
	Busy    bool

	Login  forms.LoginDraft
	Server forms.ServerDraft
}

func New() *State {
	return &State{Screen: ScreenLogin}
}

// Reset drops the session and every cache, keeping only the server draft.
func (s *State) Reset() {
	server := s.Server
	*s = State{Screen: ScreenLogin, Server: server}
}

func (s *State) SetError(text string) { s.Message = Message{Text: text, IsError: true} }

func (s *State) SetSuccess(text string) { s.Message = Message{Text: text} }

func (s *State) ClearMessage() { s.Message = Message{} }

func (s *State) OpenModal(m Modal) { s.Modal = m }

func (s *State) CloseModal() { s.Modal = nil }

func (s *State) HasModal() bool { return s.Modal != nil }

// Tabs

func (s *State) NextTab() { s.Tab = s.Tab.Next() }
func (s *State) PrevTab() { s.Tab = s.Tab.Prev() }

// Months

func (s *State) SelectedMonth() (models.Month, bool) {
	if !inRange(s.MonthIndex, len(s.Data.Months)) {
		return models.Month{}, false
	}
	return s.Data.Months[s.MonthIndex], true
}

func (s *State) SelectedMonthID() int64 {
	m, ok := s.SelectedMonth()
	if !ok {
		return 0
	}
	return m.ID
}

func (s *State) MonthClosed() bool {
	m, ok := s.SelectedMonth()
	return ok && m.IsClosed
}

// PrevMonth moves one month back and reports whether the index changed.
func (s *State) PrevMonth() bool {
	if s.MonthIndex <= 0 || len(s.Data.Months) == 0 {
		return false
	}
	s.MonthIndex--
	return true
}

func (s *State) NextMonth() bool {
	if s.MonthIndex >= len(s.Data.Months)-1 {
		return false
	}
	s.MonthIndex++
	return true
}

// DefaultMonthIndex picks the month to show after loading: the current
// month, or when it is closed the first later month that is open, falling
// back to the current month. Index 0 when current is unknown.
func DefaultMonthIndex(months []models.Month, current *models.Month) int {
	if current == nil {
		return 0
	}
	idx := -1
	for i, m := range months {
		if m.ID == current.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0
	}
	if current.IsClosed {
		for i := idx + 1; i < len(months); i++ {
			if !months[i].IsClosed {
				return i
			}
		}
	}
	return idx
}

func (s *State) SelectCurrentMonth() {
	s.MonthIndex = DefaultMonthIndex(s.Data.Months, s.Data.CurrentMonth)
}

// ApplyMonthClose folds a close/open result into the months cache so the
// flag is right before the list is re-fetched.
func (s *State) ApplyMonthClose(res models.MonthCloseResult) {
	for i := range s.Data.Months {
		if s.Data.Months[i].ID != res.ID {
			continue
		}
		s.Data.Months[i].IsClosed = res.IsClosed
		s.Data.Months[i].ClosedAt = res.ClosedAt
		s.Data.Months[i].ClosedBy = res.ClosedBy
	}
	if s.Data.CurrentMonth != nil && s.Data.CurrentMonth.ID == res.ID {
		s.Data.CurrentMonth.IsClosed = res.IsClosed
	}
}

// Cache replacement. Each setter re-clamps its selection.

func (s *State) SetMonths(ms []models.Month) {
	s.Data.Months = ms
	s.MonthIndex = clamp(s.MonthIndex, len(ms))
}

func (s *State) SetExpenses(es []models.Expense) {
	s.Data.Expenses = es
	s.ExpenseSel = clamp(s.ExpenseSel, len(s.FilteredExpenses()))
}

func (s *State) SetIncomes(is []models.Income) {
	s.Data.Incomes = is
	s.IncomeSel = clamp(s.IncomeSel, len(s.FilteredIncomes()))
}

func (s *State) SetCategories(cs []models.Category) {
	s.Data.Categories = cs
	s.CategorySel = clamp(s.CategorySel, len(cs))
}

func (s *State) SetPeriods(ps []models.Period) {
	s.Data.Periods = ps
	s.PeriodSel = clamp(s.PeriodSel, len(ps))
}

func (s *State) SetIncomeTypes(ts []models.IncomeType) {
	s.Data.IncomeTypes = ts
	s.IncomeTypeSel = clamp(s.IncomeTypeSel, len(ts))
}

// Filters

// FilterExpenses returns the expenses matching the given filters, in
// order. Empty filters match everything. The input is not modified.
func FilterExpenses(es []models.Expense, period, category string) []models.Expense {
	out := make([]models.Expense, 0, len(es))
	for _, e := range es {
		if period != "" && e.Period != period {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilterIncomes(is []models.Income, period string) []models.Income {
	out := make([]models.Income, 0, len(is))
	for _, in := range is {
		if period != "" && in.Period != period {
			continue
		}
		out = append(out, in)
	}
	return out
}

func (s *State) FilteredExpenses() []models.Expense {
	return FilterExpenses(s.Data.Expenses, s.PeriodFilter, s.CategoryFilter)
}

func (s *State) FilteredIncomes() []models.Income {
	return FilterIncomes(s.Data.Incomes, s.PeriodFilter)
}

func (s *State) HasFilters() bool { return s.PeriodFilter != "" || s.CategoryFilter != "" }

// CyclePeriodFilter steps none -> each period -> none.
func (s *State) CyclePeriodFilter() {
	names := make([]string, 0, len(s.Data.Periods))
	for _, p := range s.Data.Periods {
		names = append(names, p.Name)
	}
	s.PeriodFilter = nextFilter(s.PeriodFilter, names)
	s.ExpenseSel, s.IncomeSel = 0, 0
}

func (s *State) CycleCategoryFilter() {
	names := make([]string, 0, len(s.Data.Categories))
	for _, c := range s.Data.Categories {
		names = append(names, c.Name)
	}
	s.CategoryFilter = nextFilter(s.CategoryFilter, names)
	s.ExpenseSel = 0
}

func (s *State) ClearFilters() {
	s.PeriodFilter, s.CategoryFilter = "", ""
	s.ExpenseSel, s.IncomeSel = 0, 0
}

func nextFilter(current string, names []string) string {
	if current == "" {
		if len(names) == 0 {
			return ""
		}
		return names[0]
	}
	for i, n := range names {
		if n == current {
			if i+1 < len(names) {
				return names[i+1]
			}
			return ""
		}
	}
	return ""
}

// Selection

// MoveSelection moves the active list's selection with wraparound. Lists
// on the expenses and income tabs wrap over the filtered view.
func (s *State) MoveSelection(delta int) {
	switch s.Tab {
	case TabExpenses:
		s.ExpenseSel = wrap(s.ExpenseSel, delta, len(s.FilteredExpenses()))
	case TabIncome:
		s.IncomeSel = wrap(s.IncomeSel, delta, len(s.FilteredIncomes()))
	case TabSettings:
		switch s.SettingsTab {
		case SettingsCategories:
			s.CategorySel = wrap(s.CategorySel, delta, len(s.Data.Categories))
		case SettingsPeriods:
			s.PeriodSel = wrap(s.PeriodSel, delta, len(s.Data.Periods))
		case SettingsIncomeTypes:
			s.IncomeTypeSel = wrap(s.IncomeTypeSel, delta, len(s.Data.IncomeTypes))
		}
	}
}

func (s *State) SelectedExpense() (models.Expense, bool) {
	es := s.FilteredExpenses()
	if !inRange(s.ExpenseSel, len(es)) {
		return models.Expense{}, false
	}
	return es[s.ExpenseSel], true
}

func (s *State) SelectedIncome() (models.Income, bool) {
	is := s.FilteredIncomes()
	if !inRange(s.IncomeSel, len(is)) {
		return models.Income{}, false
	}
	return is[s.IncomeSel], true
}

func (s *State) SelectedCategory() (models.Category, bool) {
	if !inRange(s.CategorySel, len(s.Data.Categories)) {
		return models.Category{}, false
	}
	return s.Data.Categories[s.CategorySel], true
}

func (s *State) SelectedPeriod() (models.Period, bool) {
	if !inRange(s.PeriodSel, len(s.Data.Periods)) {
		return models.Period{}, false
	}
	return s.Data.Periods[s.PeriodSel], true
}

func (s *State) SelectedIncomeType() (models.IncomeType, bool) {
	if !inRange(s.IncomeTypeSel, len(s.Data.IncomeTypes)) {
		return models.IncomeType{}, false
	}
	return s.Data.IncomeTypes[s.IncomeTypeSel], true
}

// IncomeTypeName resolves an income type id for display.
func (s *State) IncomeTypeName(id int64) string {
	for _, t := range s.Data.IncomeTypes {
		if t.ID == id {
			return t.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

// Options exposes the reference lists to form drafts.
func (s *State) Options() forms.Options {
	var o forms.Options
	for _, p := range s.Data.Periods {
		o.Periods = append(o.Periods, forms.Option{ID: p.ID, Name: p.Name})
	}
	for _, c := range s.Data.Categories {
		o.Categories = append(o.Categories, forms.Option{ID: c.ID, Name: c.Name})
	}
	for _, t := range s.Data.IncomeTypes {
		o.IncomeTypes = append(o.IncomeTypes, forms.Option{ID: t.ID, Name: t.Name})
	}
	return o
}

// ClosedMonthAction names the operation a closed month refuses.
type ClosedMonthAction int

const (
	ActionAdd ClosedMonthAction = iota
	ActionEdit
	ActionDelete
	ActionPay
)

func (a ClosedMonthAction) message() string {
	switch a {
	case ActionEdit:
		return "Cannot edit items in a closed month. Reopen the month first."
	case ActionDelete:
		return "Cannot delete items in a closed month. Reopen the month first."
	case ActionPay:
		return "Cannot pay expenses in a closed month. Reopen the month first."
	default:
		return "Cannot add items to a closed month. Reopen the month first."
	}
}

// RequireOpenMonth sets the refusal message and returns false when the
// selected month is closed.
func (s *State) RequireOpenMonth(a ClosedMonthAction) bool {
	if s.MonthClosed() {
		s.SetError(a.message())
		return false
	}
	return true
}
