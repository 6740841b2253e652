package state

import (
	"github.com/kleyson/appz-budget/internal/forms"
)

// ModalKind enumerates every overlay the dashboard can show.
type ModalKind int

const (
	ModalExpenseForm ModalKind = iota
	ModalIncomeForm
	ModalCategoryForm
	ModalPeriodForm
	ModalIncomeTypeForm
	ModalPasswordForm
	ModalConfirmDelete
	ModalConfirmPay
	ModalConfirmCloseMonth
	ModalConfirmClone
	ModalHelp
)

var AllModalKinds = []ModalKind{
	ModalExpenseForm, ModalIncomeForm, ModalCategoryForm, ModalPeriodForm,
	ModalIncomeTypeForm, ModalPasswordForm, ModalConfirmDelete, ModalConfirmPay,
	ModalConfirmCloseMonth, ModalConfirmClone, ModalHelp,
}

// Modal is the closed sum of overlays; each variant carries its own payload
// so a draft lives exactly as long as its modal.
type Modal interface {
	Kind() ModalKind
	modal()
}

type ExpenseFormModal struct{ Draft *forms.ExpenseDraft }

type IncomeFormModal struct{ Draft *forms.IncomeDraft }

// NamedFormModal is the category, period or income-type form, told apart
// by the draft's kind.
type NamedFormModal struct{ Draft *forms.NamedDraft }

type PasswordFormModal struct{ Draft *forms.PasswordDraft }

// EntityKind names what a delete confirmation removes.
type EntityKind int

const (
	EntityExpense EntityKind = iota
	EntityIncome
	EntityCategory
	EntityPeriod
	EntityIncomeType
)

type ConfirmDeleteModal struct {
	Message string
	ID      int64
	Entity  EntityKind
}

type ConfirmPayModal struct {
	ExpenseName string
	ExpenseID   int64
	AmountInput string
}

type ConfirmCloseMonthModal struct {
	MonthName string
	MonthID   int64
	Closing   bool
}

type ConfirmCloneModal struct {
	MonthName string
	MonthID   int64
}

type HelpModal struct{}

func (ExpenseFormModal) Kind() ModalKind       { return ModalExpenseForm }
func (IncomeFormModal) Kind() ModalKind        { return ModalIncomeForm }
func (PasswordFormModal) Kind() ModalKind      { return ModalPasswordForm }
func (ConfirmDeleteModal) Kind() ModalKind     { return ModalConfirmDelete }
func (*ConfirmPayModal) Kind() ModalKind       { return ModalConfirmPay }
func (ConfirmCloseMonthModal) Kind() ModalKind { return ModalConfirmCloseMonth }
func (ConfirmCloneModal) Kind() ModalKind      { return ModalConfirmClone }
func (HelpModal) Kind() ModalKind              { return ModalHelp }

func (m NamedFormModal) Kind() ModalKind {
	switch m.Draft.Kind {
	case forms.KindPeriod:
		return ModalPeriodForm
	case forms.KindIncomeType:
		return ModalIncomeTypeForm
	default:
		return ModalCategoryForm
	}
}

func (ExpenseFormModal) modal()       {}
func (IncomeFormModal) modal()        {}
func (NamedFormModal) modal()         {}
func (PasswordFormModal) modal()      {}
func (ConfirmDeleteModal) modal()     {}
func (*ConfirmPayModal) modal()       {}
func (ConfirmCloseMonthModal) modal() {}
func (ConfirmCloneModal) modal()      {}
func (HelpModal) modal()              {}
