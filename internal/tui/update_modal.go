package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/state"
)

// updateModal routes keys to the active modal. Every modal kind has a case;
// the default only guards against a variant added without a handler.
func (a App) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m := a.st.Modal.(type) {
	case state.ExpenseFormModal:
		return a.updateExpenseForm(m.Draft, msg)
	case state.IncomeFormModal:
		return a.updateIncomeForm(m.Draft, msg)
	case state.NamedFormModal:
		return a.updateNamedForm(m.Draft, msg)
	case state.PasswordFormModal:
		return a.updatePasswordForm(m.Draft, msg)
	case state.ConfirmDeleteModal:
		return a.confirm(msg, func() tea.Cmd { return a.deleteCmd(m) })
	case *state.ConfirmPayModal:
		return a.updatePay(m, msg)
	case state.ConfirmCloseMonthModal:
		return a.confirm(msg, func() tea.Cmd { return a.toggleMonthCmd(m) })
	case state.ConfirmCloneModal:
		return a.confirm(msg, func() tea.Cmd { return a.cloneCmd(m) })
	case state.HelpModal:
		a.st.CloseModal()
		return a, nil
	default:
		a.log.Error("unhandled modal", "kind", fmt.Sprintf("%T", m))
		a.st.CloseModal()
		return a, nil
	}
}

// confirm handles the y/n/esc modals. The modal stays up while the request
// runs and is closed by the result handler.
func (a App) confirm(msg tea.KeyMsg, run func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch a.lookup(msg, scopeConfirm) {
	case actionConfirm:
		return a, a.request(run())
	case actionCancel:
		a.st.CloseModal()
	}
	return a, nil
}

func (a App) updatePay(m *state.ConfirmPayModal, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.lookup(msg, scopePay) {
	case actionConfirm:
		amount, ok := forms.ParsePositiveAmount(m.AmountInput)
		if !ok {
			a.st.SetError("Amount must be a positive number")
			return a, nil
		}
		return a, a.request(a.payCmd(m.ExpenseID, amount))
	case actionCancel:
		a.st.CloseModal()
		return a, nil
	case actionBackspace:
		m.AmountInput = forms.Backspace(m.AmountInput)
		return a, nil
	}
	if r, ok := typedRune(msg); ok {
		m.AmountInput = forms.AppendAmountRune(m.AmountInput, r)
	}
	return a, nil
}

func (a App) updateExpenseForm(d *forms.ExpenseDraft, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := a.st.Options()
	if d.Focus == forms.ExpensePurchases {
		switch a.lookup(msg, scopePurchases) {
		case actionAddPurchase:
			d.AddPurchase()
			return a, nil
		case actionDelPurchase:
			d.RemovePurchase()
			return a, nil
		case actionPurchaseUp:
			d.MovePurchase(-1)
			return a, nil
		case actionPurchaseDown:
			d.MovePurchase(1)
			return a, nil
		case actionPurchaseField:
			d.TogglePurchaseField()
			return a, nil
		}
	}
	switch a.lookup(msg, scopeForm) {
	case actionCancel:
		a.st.CloseModal()
		return a, nil
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionOptionNext:
		d.CycleOption(1, opts)
		return a, nil
	case actionOptionPrev:
		d.CycleOption(-1, opts)
		return a, nil
	case actionBackspace:
		d.Backspace()
		return a, nil
	case actionSubmit:
		if d.Focus == forms.ExpensePurchases && len(d.Purchases) == 0 {
			d.AddPurchase()
			return a, nil
		}
		return a.submitExpense(d)
	}
	if r, ok := typedRune(msg); ok {
		d.Input(r, opts)
	}
	return a, nil
}

func (a App) submitExpense(d *forms.ExpenseDraft) (tea.Model, tea.Cmd) {
	monthID := a.st.SelectedMonthID()
	if monthID == 0 {
		a.st.SetError("No month selected")
		return a, nil
	}
	if d.IsEditing() {
		in, err := d.ToUpdate()
		if err != nil {
			return a.invalid(err)
		}
		return a, a.request(a.updateExpenseCmd(*d.EditingID, in))
	}
	in, err := d.ToCreate(monthID)
	if err != nil {
		return a.invalid(err)
	}
	return a, a.request(a.createExpenseCmd(in))
}

func (a App) updateIncomeForm(d *forms.IncomeDraft, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := a.st.Options()
	switch a.lookup(msg, scopeForm) {
	case actionCancel:
		a.st.CloseModal()
		return a, nil
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionOptionNext:
		d.CycleOption(1, opts)
		return a, nil
	case actionOptionPrev:
		d.CycleOption(-1, opts)
		return a, nil
	case actionBackspace:
		d.Backspace()
		return a, nil
	case actionSubmit:
		return a.submitIncome(d)
	}
	if r, ok := typedRune(msg); ok {
		d.Input(r, opts)
	}
	return a, nil
}

func (a App) submitIncome(d *forms.IncomeDraft) (tea.Model, tea.Cmd) {
	monthID := a.st.SelectedMonthID()
	if monthID == 0 {
		a.st.SetError("No month selected")
		return a, nil
	}
	if d.IsEditing() {
		in, err := d.ToUpdate()
		if err != nil {
			return a.invalid(err)
		}
		return a, a.request(a.updateIncomeCmd(*d.EditingID, in))
	}
	in, err := d.ToCreate(monthID)
	if err != nil {
		return a.invalid(err)
	}
	return a, a.request(a.createIncomeCmd(in))
}

func (a App) updateNamedForm(d *forms.NamedDraft, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.lookup(msg, scopeNamedForm, scopeForm) {
	case actionCancel:
		a.st.CloseModal()
		return a, nil
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionRandomColor:
		d.RandomizeColor(a.rng)
		return a, nil
	case actionBackspace:
		d.Backspace()
		return a, nil
	case actionSubmit:
		return a.submitNamed(d)
	}
	if r, ok := typedRune(msg); ok {
		if r == 'r' && d.Focus == forms.NamedColor {
			d.RandomizeColor(a.rng)
			return a, nil
		}
		d.Input(r)
	}
	return a, nil
}

func (a App) submitNamed(d *forms.NamedDraft) (tea.Model, tea.Cmd) {
	if d.IsEditing() {
		in, err := d.ToUpdate()
		if err != nil {
			return a.invalid(err)
		}
		return a, a.request(a.updateNamedCmd(d.Kind, *d.EditingID, in))
	}
	in, err := d.ToCreate()
	if err != nil {
		return a.invalid(err)
	}
	return a, a.request(a.createNamedCmd(d.Kind, in))
}

func (a App) updatePasswordForm(d *forms.PasswordDraft, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		d.PrevField()
		return a, nil
	case tea.KeyDown:
		d.NextField()
		return a, nil
	}
	switch a.lookup(msg, scopeForm) {
	case actionCancel:
		a.st.CloseModal()
		return a, nil
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionBackspace:
		d.Backspace()
		return a, nil
	case actionSubmit:
		req, err := d.ToRequest()
		if err != nil {
			return a.invalid(err)
		}
		return a, a.request(a.changePasswordCmd(req.CurrentPassword, req.NewPassword))
	}
	if r, ok := typedRune(msg); ok {
		d.Input(r)
	}
	return a, nil
}

// invalid shows validation failures; the modal and its draft stay as they
// are.
func (a App) invalid(err error) (tea.Model, tea.Cmd) {
	a.st.SetError(err.Error())
	return a, nil
}

// Opening modals

func (a App) openNew() (tea.Model, tea.Cmd) {
	st := a.st
	opts := st.Options()
	switch st.Tab {
	case state.TabExpenses:
		if !st.RequireOpenMonth(state.ActionAdd) {
			return a, nil
		}
		st.OpenModal(state.ExpenseFormModal{Draft: forms.NewExpenseDraft(opts)})
	case state.TabIncome:
		if !st.RequireOpenMonth(state.ActionAdd) {
			return a, nil
		}
		st.OpenModal(state.IncomeFormModal{Draft: forms.NewIncomeDraft(opts)})
	case state.TabSettings:
		switch st.SettingsTab {
		case state.SettingsCategories:
			st.OpenModal(state.NamedFormModal{Draft: forms.NewNamedDraft(forms.KindCategory)})
		case state.SettingsPeriods:
			st.OpenModal(state.NamedFormModal{Draft: forms.NewNamedDraft(forms.KindPeriod)})
		case state.SettingsIncomeTypes:
			st.OpenModal(state.NamedFormModal{Draft: forms.NewNamedDraft(forms.KindIncomeType)})
		case state.SettingsPassword:
			st.OpenModal(state.PasswordFormModal{Draft: &forms.PasswordDraft{}})
		}
	}
	return a, nil
}

func (a App) openEdit() (tea.Model, tea.Cmd) {
	st := a.st
	switch st.Tab {
	case state.TabExpenses:
		if !st.RequireOpenMonth(state.ActionEdit) {
			return a, nil
		}
		if e, ok := st.SelectedExpense(); ok {
			st.OpenModal(state.ExpenseFormModal{Draft: forms.EditExpenseDraft(e)})
		}
	case state.TabIncome:
		if !st.RequireOpenMonth(state.ActionEdit) {
			return a, nil
		}
		if in, ok := st.SelectedIncome(); ok {
			st.OpenModal(state.IncomeFormModal{Draft: forms.EditIncomeDraft(in)})
		}
	case state.TabSettings:
		switch st.SettingsTab {
		case state.SettingsCategories:
			if c, ok := st.SelectedCategory(); ok {
				st.OpenModal(state.NamedFormModal{Draft: forms.EditNamedDraft(forms.KindCategory, c.ID, c.Name, c.Color)})
			}
		case state.SettingsPeriods:
			if p, ok := st.SelectedPeriod(); ok {
				st.OpenModal(state.NamedFormModal{Draft: forms.EditNamedDraft(forms.KindPeriod, p.ID, p.Name, p.Color)})
			}
		case state.SettingsIncomeTypes:
			if t, ok := st.SelectedIncomeType(); ok {
				st.OpenModal(state.NamedFormModal{Draft: forms.EditNamedDraft(forms.KindIncomeType, t.ID, t.Name, t.Color)})
			}
		case state.SettingsPassword:
			st.OpenModal(state.PasswordFormModal{Draft: &forms.PasswordDraft{}})
		}
	}
	return a, nil
}

func (a App) openDelete() (tea.Model, tea.Cmd) {
	st := a.st
	var m state.ConfirmDeleteModal
	var ok bool
	switch st.Tab {
	case state.TabExpenses:
		if !st.RequireOpenMonth(state.ActionDelete) {
			return a, nil
		}
		if exp, found := st.SelectedExpense(); found {
			m, ok = state.ConfirmDeleteModal{Message: fmt.Sprintf("Delete expense '%s'?", exp.ExpenseName), ID: exp.ID, Entity: state.EntityExpense}, true
		}
	case state.TabIncome:
		if !st.RequireOpenMonth(state.ActionDelete) {
			return a, nil
		}
		if in, found := st.SelectedIncome(); found {
			m, ok = state.ConfirmDeleteModal{Message: "Delete this income entry?", ID: in.ID, Entity: state.EntityIncome}, true
		}
	case state.TabSettings:
		switch st.SettingsTab {
		case state.SettingsCategories:
			if c, found := st.SelectedCategory(); found {
				m, ok = state.ConfirmDeleteModal{Message: fmt.Sprintf("Delete category '%s'?", c.Name), ID: c.ID, Entity: state.EntityCategory}, true
			}
		case state.SettingsPeriods:
			if p, found := st.SelectedPeriod(); found {
				m, ok = state.ConfirmDeleteModal{Message: fmt.Sprintf("Delete period '%s'?", p.Name), ID: p.ID, Entity: state.EntityPeriod}, true
			}
		case state.SettingsIncomeTypes:
			if t, found := st.SelectedIncomeType(); found {
				m, ok = state.ConfirmDeleteModal{Message: fmt.Sprintf("Delete income type '%s'?", t.Name), ID: t.ID, Entity: state.EntityIncomeType}, true
			}
		}
	}
	if ok {
		st.OpenModal(m)
	}
	return a, nil
}

func (a App) openPay() (tea.Model, tea.Cmd) {
	st := a.st
	if !st.RequireOpenMonth(state.ActionPay) {
		return a, nil
	}
	e, ok := st.SelectedExpense()
	if !ok {
		return a, nil
	}
	if e.HasPurchases() {
		st.SetError("Expense already has purchases")
		return a, nil
	}
	st.OpenModal(&state.ConfirmPayModal{
		ExpenseName: e.ExpenseName,
		ExpenseID:   e.ID,
		AmountInput: forms.FormatAmount(e.Budget),
	})
	return a, nil
}

func (a App) openToggleMonth() (tea.Model, tea.Cmd) {
	m, ok := a.st.SelectedMonth()
	if !ok {
		a.st.SetError("No month selected")
		return a, nil
	}
	a.st.OpenModal(state.ConfirmCloseMonthModal{MonthName: m.DisplayName(), MonthID: m.ID, Closing: !m.IsClosed})
	return a, nil
}

func (a App) openClone() (tea.Model, tea.Cmd) {
	m, ok := a.st.SelectedMonth()
	if !ok {
		a.st.SetError("No month selected")
		return a, nil
	}
	a.st.OpenModal(state.ConfirmCloneModal{MonthName: m.DisplayName(), MonthID: m.ID})
	return a, nil
}

// reorder swaps the selected expense with its neighbor and persists the
// full order.
func (a App) reorder(delta int) (tea.Model, tea.Cmd) {
	st := a.st
	if st.HasFilters() {
		st.SetError("Clear filters before reordering")
		return a, nil
	}
	if !st.RequireOpenMonth(state.ActionEdit) {
		return a, nil
	}
	from, to := st.ExpenseSel, st.ExpenseSel+delta
	n := len(st.Data.Expenses)
	if from < 0 || from >= n || to < 0 || to >= n {
		return a, nil
	}
	ids := make([]int64, 0, n)
	for _, e := range st.Data.Expenses {
		ids = append(ids, e.ID)
	}
	ids[from], ids[to] = ids[to], ids[from]
	return a, a.request(a.reorderCmd(ids, to))
}
