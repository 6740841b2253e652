package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/models"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, ExpenseName: "Rent", Period: "Fixed", Category: "Housing"},
		{ID: 2, ExpenseName: "Milk", Period: "Variable", Category: "Groceries"},
		{ID: 3, ExpenseName: "Bus", Period: "Variable", Category: "Transport"},
		{ID: 4, ExpenseName: "Power", Period: "Fixed", Category: "Housing"},
	}
}

func TestTabCycles(t *testing.T) {
	t.Parallel()
	for _, tab := range AllTabs {
		require.Equal(t, tab, tab.Prev().Next())
		require.Equal(t, tab, tab.Next().Prev())
		got := tab
		for range 5 {
			got = got.Next()
		}
		require.Equal(t, tab, got)
	}
	for _, sub := range AllSettingsTabs {
		require.Equal(t, sub, sub.Prev().Next())
		got := sub
		for range 4 {
			got = got.Next()
		}
		require.Equal(t, sub, got)
	}
}

func TestMonthNavigationIsClamped(t *testing.T) {
	t.Parallel()
	s := New()
	require.False(t, s.PrevMonth())
	require.False(t, s.NextMonth())

	s.SetMonths([]models.Month{{ID: 1}, {ID: 2}, {ID: 3}})
	require.False(t, s.PrevMonth())
	require.Equal(t, 0, s.MonthIndex)
	require.True(t, s.NextMonth())
	require.True(t, s.NextMonth())
	require.False(t, s.NextMonth())
	require.Equal(t, 2, s.MonthIndex)
	require.Equal(t, int64(3), s.SelectedMonthID())

	s.SetMonths([]models.Month{{ID: 1}})
	require.Equal(t, 0, s.MonthIndex)
}

func TestDefaultMonthIndex(t *testing.T) {
	t.Parallel()
	months := []models.Month{
		{ID: 1, IsClosed: true},
		{ID: 2, IsClosed: true},
		{ID: 3, IsClosed: true},
		{ID: 4},
	}
	require.Equal(t, 0, DefaultMonthIndex(months, nil))
	require.Equal(t, 0, DefaultMonthIndex(months, &models.Month{ID: 99}))
	require.Equal(t, 3, DefaultMonthIndex(months, &models.Month{ID: 4}))
	require.Equal(t, 3, DefaultMonthIndex(months, &models.Month{ID: 2, IsClosed: true}))

	allClosed := months[:3]
	require.Equal(t, 1, DefaultMonthIndex(allClosed, &models.Month{ID: 2, IsClosed: true}))
}

func TestFilteringIsPure(t *testing.T) {
	t.Parallel()
	s := New()
	s.Data.Periods = []models.Period{{ID: 1, Name: "Fixed"}, {ID: 2, Name: "Variable"}}
	s.SetExpenses(sampleExpenses())
	original := append([]models.Expense(nil), s.Data.Expenses...)

	s.CyclePeriodFilter()
	require.Equal(t, "Fixed", s.PeriodFilter)
	require.Equal(t, []int64{1, 4}, expenseIDs(s.FilteredExpenses()))

	s.CategoryFilter = "Groceries"
	require.Empty(t, s.FilteredExpenses())

	s.ClearFilters()
	require.Equal(t, original, s.FilteredExpenses())
	require.Equal(t, original, s.Data.Expenses)

	s.CyclePeriodFilter()
	s.CyclePeriodFilter()
	require.Equal(t, "Variable", s.PeriodFilter)
	s.CyclePeriodFilter()
	require.Empty(t, s.PeriodFilter)
	require.Equal(t, original, s.FilteredExpenses())
}

func TestFilterIncomesByPeriodOnly(t *testing.T) {
	t.Parallel()
	incomes := []models.Income{{ID: 1, Period: "Fixed"}, {ID: 2, Period: "Variable"}}
	require.Len(t, FilterIncomes(incomes, "Variable"), 1)
	require.Len(t, FilterIncomes(incomes, ""), 2)
}

func TestMoveSelectionWrapsOverFilteredList(t *testing.T) {
	t.Parallel()
	s := New()
	s.Tab = TabExpenses
	s.SetExpenses(sampleExpenses())
	s.PeriodFilter = "Variable"

	s.MoveSelection(1)
	require.Equal(t, 1, s.ExpenseSel)
	s.MoveSelection(1)
	require.Equal(t, 0, s.ExpenseSel)
	s.MoveSelection(-1)
	e, ok := s.SelectedExpense()
	require.True(t, ok)
	require.Equal(t, "Bus", e.ExpenseName)

	s.Tab = TabSettings
	s.SettingsTab = SettingsCategories
	s.MoveSelection(1)
	require.Zero(t, s.CategorySel)
}

func TestSetExpensesReclampsSelection(t *testing.T) {
	t.Parallel()
	s := New()
	s.SetExpenses(sampleExpenses()[:3])
	s.ExpenseSel = 2

	s.SetExpenses(sampleExpenses()[:2])
	require.Equal(t, 1, s.ExpenseSel)

	s.SetExpenses(nil)
	_, ok := s.SelectedExpense()
	require.False(t, ok)
}

func TestApplyMonthClose(t *testing.T) {
	t.Parallel()
	s := New()
	s.SetMonths([]models.Month{{ID: 1}, {ID: 2}})
	s.Data.CurrentMonth = &models.Month{ID: 2}
	s.MonthIndex = 1
	require.False(t, s.MonthClosed())

	s.ApplyMonthClose(models.MonthCloseResult{ID: 2, IsClosed: true})
	require.True(t, s.MonthClosed())
	require.True(t, s.Data.CurrentMonth.IsClosed)
	require.False(t, s.Data.Months[0].IsClosed)
}

func TestRequireOpenMonth(t *testing.T) {
	t.Parallel()
	s := New()
	s.SetMonths([]models.Month{{ID: 1, IsClosed: true}})

	require.False(t, s.RequireOpenMonth(ActionDelete))
	require.True(t, s.Message.IsError)
	require.Equal(t, "Cannot delete items in a closed month. Reopen the month first.", s.Message.Text)

	s.Data.Months[0].IsClosed = false
	s.ClearMessage()
	require.True(t, s.RequireOpenMonth(ActionAdd))
	require.Empty(t, s.Message.Text)
}

func TestMessagesReplaceEachOther(t *testing.T) {
	t.Parallel()
	s := New()
	s.SetError("bad")
	s.SetSuccess("good")
	require.Equal(t, Message{Text: "good"}, s.Message)
	s.SetError("bad")
	require.Equal(t, Message{Text: "bad", IsError: true}, s.Message)
}

func TestModalKinds(t *testing.T) {
	t.Parallel()
	require.Equal(t, ModalPeriodForm, NamedFormModal{Draft: forms.NewNamedDraft(forms.KindPeriod)}.Kind())
	require.Equal(t, ModalIncomeTypeForm, NamedFormModal{Draft: forms.NewNamedDraft(forms.KindIncomeType)}.Kind())
	require.Equal(t, ModalCategoryForm, NamedFormModal{Draft: forms.NewNamedDraft(forms.KindCategory)}.Kind())
	require.Equal(t, ModalConfirmPay, (&ConfirmPayModal{}).Kind())
	require.Len(t, AllModalKinds, 11)
}

func TestOptionsAndReset(t *testing.T) {
	t.Parallel()
	s := New()
	s.Screen = ScreenDashboard
	s.SetIncomeTypes([]models.IncomeType{{ID: 5, Name: "Salary"}})
	s.Server = *forms.NewServerDraft("http://x", "k")

	require.Equal(t, []forms.Option{{ID: 5, Name: "Salary"}}, s.Options().IncomeTypes)
	require.Equal(t, "Salary", s.IncomeTypeName(5))
	require.Equal(t, "#9", s.IncomeTypeName(9))

	s.Reset()
	require.Equal(t, ScreenLogin, s.Screen)
	require.Empty(t, s.Data.IncomeTypes)
	require.Equal(t, "http://x", s.Server.URL)
}

func expenseIDs(es []models.Expense) []int64 {
	ids := make([]int64, 0, len(es))
	for _, e := range es {
		ids = append(ids, e.ID)
	}
	return ids
}
