package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/api"
	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/models"
	"github.com/kleyson/appz-budget/internal/state"
)

func expenseFilters(st *state.State, monthID int64) models.ExpenseFilters {
	return models.ExpenseFilters{Period: st.PeriodFilter, Category: st.CategoryFilter, MonthID: monthID}
}

func incomeFilters(st *state.State, monthID int64) models.IncomeFilters {
	return models.IncomeFilters{Period: st.PeriodFilter, MonthID: monthID}
}

// Commands. Each captures the client at creation so a later server change
// does not redirect an in-flight request.

func (a App) sessionCheckCmd() tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		u, err := c.Auth().Me(ctx)
		return sessionCheckedMsg{user: u, err: err}
	}
}

func (a App) loginCmd(email, password string) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		tok, err := c.Auth().Login(ctx, email, password)
		return loginDoneMsg{token: tok, err: err}
	}
}

func (a App) saveCmd(entity state.EntityKind, created bool, fn func(context.Context, *api.Client) error) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		return savedMsg{entity: entity, created: created, err: fn(ctx, c)}
	}
}

func (a App) createExpenseCmd(in models.ExpenseCreate) tea.Cmd {
	return a.saveCmd(state.EntityExpense, true, func(ctx context.Context, c *api.Client) error {
		_, err := c.Expenses().Create(ctx, in)
		return err
	})
}

func (a App) updateExpenseCmd(id int64, in models.ExpenseUpdate) tea.Cmd {
	return a.saveCmd(state.EntityExpense, false, func(ctx context.Context, c *api.Client) error {
		_, err := c.Expenses().Update(ctx, id, in)
		return err
	})
}

func (a App) createIncomeCmd(in models.IncomeCreate) tea.Cmd {
	return a.saveCmd(state.EntityIncome, true, func(ctx context.Context, c *api.Client) error {
		_, err := c.Incomes().Create(ctx, in)
		return err
	})
}

func (a App) updateIncomeCmd(id int64, in models.IncomeUpdate) tea.Cmd {
	return a.saveCmd(state.EntityIncome, false, func(ctx context.Context, c *api.Client) error {
		_, err := c.Incomes().Update(ctx, id, in)
		return err
	})
}

func namedEntity(k forms.NamedKind) state.EntityKind {
	switch k {
	case forms.KindPeriod:
		return state.EntityPeriod
	case forms.KindIncomeType:
		return state.EntityIncomeType
	default:
		return state.EntityCategory
	}
}

func (a App) createNamedCmd(k forms.NamedKind, in models.NamedCreate) tea.Cmd {
	return a.saveCmd(namedEntity(k), true, func(ctx context.Context, c *api.Client) error {
		var err error
		switch k {
		case forms.KindPeriod:
			_, err = c.Periods().Create(ctx, in)
		case forms.KindIncomeType:
			_, err = c.IncomeTypes().Create(ctx, in)
		default:
			_, err = c.Categories().Create(ctx, in)
		}
		return err
	})
}

func (a App) updateNamedCmd(k forms.NamedKind, id int64, in models.NamedUpdate) tea.Cmd {
	return a.saveCmd(namedEntity(k), false, func(ctx context.Context, c *api.Client) error {
		var err error
		switch k {
		case forms.KindPeriod:
			_, err = c.Periods().Update(ctx, id, in)
		case forms.KindIncomeType:
			_, err = c.IncomeTypes().Update(ctx, id, in)
		default:
			_, err = c.Categories().Update(ctx, id, in)
		}
		return err
	})
}

func (a App) changePasswordCmd(current, next string) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		_, err := c.Auth().ChangePassword(ctx, current, next)
		return passwordChangedMsg{err: err}
	}
}

func (a App) deleteCmd(m state.ConfirmDeleteModal) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		var err error
		switch m.Entity {
		case state.EntityExpense:
			err = c.Expenses().Delete(ctx, m.ID)
		case state.EntityIncome:
			err = c.Incomes().Delete(ctx, m.ID)
		case state.EntityCategory:
			err = c.Categories().Delete(ctx, m.ID)
		case state.EntityPeriod:
			err = c.Periods().Delete(ctx, m.ID)
		case state.EntityIncomeType:
			err = c.IncomeTypes().Delete(ctx, m.ID)
		default:
			err = fmt.Errorf("unknown entity %d", m.Entity)
		}
		return deletedMsg{err: err}
	}
}

func (a App) payCmd(id int64, amount float64) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		_, err := c.Expenses().Pay(ctx, id, &amount)
		return paidMsg{amount: amount, err: err}
	}
}

// toggleMonthCmd closes or reopens a month, then refreshes the month list.
func (a App) toggleMonthCmd(m state.ConfirmCloseMonthModal) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		msg := monthToggledMsg{closing: m.Closing}
		if m.Closing {
			msg.result, msg.err = c.Months().Close(ctx, m.MonthID)
		} else {
			msg.result, msg.err = c.Months().Open(ctx, m.MonthID)
		}
		if msg.err != nil {
			return msg
		}
		if months, err := c.Months().List(ctx); err == nil {
			msg.months = &months
		}
		return msg
	}
}

func (a App) cloneCmd(m state.ConfirmCloneModal) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		res, err := c.Expenses().CloneToNextMonth(ctx, m.MonthID)
		if err != nil {
			return clonedMsg{err: err}
		}
		msg := clonedMsg{result: res}
		if months, err := c.Months().List(ctx); err == nil {
			msg.months = &months
		}
		return msg
	}
}

func (a App) reorderCmd(ids []int64, index int) tea.Cmd {
	ctx, c := a.ctx, a.client
	return func() tea.Msg {
		return reorderedMsg{index: index, err: c.Expenses().Reorder(ctx, ids)}
	}
}

// Results

func (a App) handleSessionChecked(msg sessionCheckedMsg) (tea.Model, tea.Cmd) {
	a.done()
	st := a.st
	if msg.err != nil {
		a.client.ClearToken()
		if api.IsUnauthorized(msg.err) {
			if err := a.cfg.ClearToken(); err != nil {
				a.log.Error("save config", "err", err)
			}
			st.SetError("Session expired, please log in again")
		} else {
			st.SetError(fmt.Sprintf("Could not validate session: %v", msg.err))
		}
		st.Screen = state.ScreenLogin
		return a, nil
	}
	user := msg.user
	st.User = &user
	st.Screen = state.ScreenDashboard
	st.Login = forms.LoginDraft{}
	st.SetSuccess("Welcome, " + user.Email)
	a.log.Info("signed in", "user", user.Email)
	return a, a.loadInitial()
}

func (a App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.done()
	if msg.err != nil {
		a.log.Warn("login failed", "err", msg.err)
		a.st.SetError(fmt.Sprintf("Login failed: %v", msg.err))
		return a, nil
	}
	a.client.SetToken(msg.token.AccessToken)
	if err := a.cfg.SetToken(msg.token.AccessToken); err != nil {
		a.log.Error("save config", "err", err)
		a.st.SetError("Could not save config: " + err.Error())
	}
	return a, a.request(a.sessionCheckCmd())
}

func entityLabel(e state.EntityKind) string {
	switch e {
	case state.EntityExpense:
		return "expense"
	case state.EntityIncome:
		return "income"
	case state.EntityCategory:
		return "category"
	case state.EntityPeriod:
		return "period"
	default:
		return "income type"
	}
}

func savedText(e state.EntityKind, created bool) string {
	verb := "updated"
	if created {
		verb = "created"
	}
	switch e {
	case state.EntityExpense:
		return "Expense " + verb + " successfully"
	case state.EntityIncome:
		return "Income " + verb + " successfully"
	case state.EntityCategory:
		return "Category saved successfully"
	case state.EntityPeriod:
		return "Period saved successfully"
	default:
		return "Income type saved successfully"
	}
}

// handleSaved keeps the form open on failure so the draft can be fixed.
func (a App) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	a.done()
	if msg.err != nil {
		a.failure("Failed to save "+entityLabel(msg.entity), msg.err)
		return a, nil
	}
	a.st.CloseModal()
	a.st.SetSuccess(savedText(msg.entity, msg.created))
	switch msg.entity {
	case state.EntityExpense, state.EntityIncome:
		return a, a.loadMonth()
	default:
		return a, a.request(loadCmd(a.ctx, a.client, (*loader).settings))
	}
}

func (a App) handlePasswordChanged(msg passwordChangedMsg) (tea.Model, tea.Cmd) {
	a.done()
	if msg.err != nil {
		a.failure("Failed to change password", msg.err)
		return a, nil
	}
	a.st.CloseModal()
	a.st.SetSuccess("Password changed successfully")
	return a, nil
}

func (a App) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	a.done()
	a.st.CloseModal()
	if msg.err != nil {
		a.failure("Failed to delete", msg.err)
		return a, nil
	}
	a.st.SetSuccess("Item deleted successfully")
	if a.st.Tab == state.TabSettings {
		return a, a.loadTab()
	}
	return a, a.loadMonth()
}

func (a App) handlePaid(msg paidMsg) (tea.Model, tea.Cmd) {
	a.done()
	a.st.CloseModal()
	if msg.err != nil {
		a.failure("Failed to pay expense", msg.err)
		return a, nil
	}
	a.st.SetSuccess(fmt.Sprintf("Payment of $%.2f added successfully", msg.amount))
	return a, a.loadMonth()
}

func (a App) handleMonthToggled(msg monthToggledMsg) (tea.Model, tea.Cmd) {
	a.done()
	st := a.st
	st.CloseModal()
	if msg.err != nil {
		if msg.closing {
			a.failure("Failed to close month", msg.err)
		} else {
			a.failure("Failed to reopen month", msg.err)
		}
		return a, nil
	}
	st.ApplyMonthClose(msg.result)
	if msg.months != nil {
		st.SetMonths(*msg.months)
	}
	if msg.closing {
		st.SetSuccess("Month closed successfully")
	} else {
		st.SetSuccess("Month reopened successfully")
	}
	return a, nil
}

func (a App) handleCloned(msg clonedMsg) (tea.Model, tea.Cmd) {
	a.done()
	st := a.st
	st.CloseModal()
	if msg.err != nil {
		a.failure("Failed to clone month", msg.err)
		return a, nil
	}
	if msg.months != nil {
		st.SetMonths(*msg.months)
	}
	r := msg.result
	st.SetSuccess(fmt.Sprintf("Cloned %d expenses and %d incomes to %s", r.ClonedCount, r.ClonedIncomeCount, r.NextMonthName))
	return a, nil
}

func (a App) handleReordered(msg reorderedMsg) (tea.Model, tea.Cmd) {
	a.done()
	if msg.err != nil {
		a.failure("Failed to reorder expenses", msg.err)
		return a, nil
	}
	a.st.ExpenseSel = msg.index
	return a, a.loadTab()
}
