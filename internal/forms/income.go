package forms

import (
	"strings"

	"github.com/kleyson/appz-budget/internal/models"
)

type IncomeField int

const (
	IncomeTypeField IncomeField = iota
	IncomePeriod
	IncomeBudget
	IncomeAmount
)

func (f IncomeField) Next() IncomeField {
	switch f {
	case IncomeTypeField:
		return IncomePeriod
	case IncomePeriod:
		return IncomeBudget
	case IncomeBudget:
		return IncomeAmount
	default:
		return IncomeTypeField
	}
}

func (f IncomeField) Prev() IncomeField {
	switch f {
	case IncomeAmount:
		return IncomeBudget
	case IncomeBudget:
		return IncomePeriod
	case IncomePeriod:
		return IncomeTypeField
	default:
		return IncomeAmount
	}
}

func (f IncomeField) String() string {
	switch f {
	case IncomeTypeField:
		return "Income Type"
	case IncomePeriod:
		return "Period"
	case IncomeBudget:
		return "Budget"
	case IncomeAmount:
		return "Amount"
	}
	return "?"
}

type IncomeDraft struct {
	EditingID *int64
	Focus     IncomeField

	// IncomeTypeID is zero when nothing is selected.
	IncomeTypeID int64
	Period       string
	Budget       string
	Amount       string

	seek seeker
}

func NewIncomeDraft(opts Options) *IncomeDraft {
	d := &IncomeDraft{
		Period: firstName(opts.Periods),
		Amount: "0",
	}
	if len(opts.IncomeTypes) > 0 {
		d.IncomeTypeID = opts.IncomeTypes[0].ID
	}
	return d
}

func EditIncomeDraft(in models.Income) *IncomeDraft {
	id := in.ID
	return &IncomeDraft{
		EditingID:    &id,
		IncomeTypeID: in.IncomeTypeID,
		Period:       in.Period,
		Budget:       FormatAmount(in.Budget),
		Amount:       FormatAmount(in.Amount),
	}
}

func (d *IncomeDraft) IsEditing() bool { return d.EditingID != nil }

func (d *IncomeDraft) NextField() {
	d.Focus = d.Focus.Next()
	d.seek.reset()
}

func (d *IncomeDraft) PrevField() {
	d.Focus = d.Focus.Prev()
	d.seek.reset()
}

// IncomeTypeName resolves the selected income type against opts.
func (d *IncomeDraft) IncomeTypeName(opts Options) string {
	if i := indexByID(opts.IncomeTypes, d.IncomeTypeID); i >= 0 {
		return opts.IncomeTypes[i].Name
	}
	return ""
}

func (d *IncomeDraft) Input(r rune, opts Options) {
	switch d.Focus {
	case IncomeTypeField:
		if o, ok := d.seek.push(r, opts.IncomeTypes); ok {
			d.IncomeTypeID = o.ID
		}
	case IncomePeriod:
		if o, ok := d.seek.push(r, opts.Periods); ok {
			d.Period = o.Name
		}
	case IncomeBudget:
		d.Budget = appendNumeric(d.Budget, r)
	case IncomeAmount:
		d.Amount = appendNumeric(d.Amount, r)
	}
}

func (d *IncomeDraft) Backspace() {
	switch d.Focus {
	case IncomeTypeField, IncomePeriod:
		d.seek.reset()
	case IncomeBudget:
		d.Budget = backspace(d.Budget)
	case IncomeAmount:
		d.Amount = backspace(d.Amount)
	}
}

func (d *IncomeDraft) CycleOption(dir int, opts Options) {
	d.seek.reset()
	switch d.Focus {
	case IncomeTypeField:
		i := step(indexByID(opts.IncomeTypes, d.IncomeTypeID), dir, len(opts.IncomeTypes))
		if i >= 0 {
			d.IncomeTypeID = opts.IncomeTypes[i].ID
		}
	case IncomePeriod:
		d.Period = cycleName(opts.Periods, d.Period, dir)
	}
}

func (d *IncomeDraft) Validate() []string {
	var msgs []string
	if d.IncomeTypeID == 0 {
		msgs = append(msgs, "Income type is required")
	}
	if strings.TrimSpace(d.Period) == "" {
		msgs = append(msgs, "Period is required")
	}
	if _, ok := parseNumber(d.Budget); !ok {
		msgs = append(msgs, "Budget must be a valid number")
	}
	if _, ok := parseNumber(d.Amount); !ok {
		msgs = append(msgs, "Amount must be a valid number")
	}
	return msgs
}

func (d *IncomeDraft) ToCreate(monthID int64) (models.IncomeCreate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.IncomeCreate{}, err
	}
	budget, _ := parseNumber(d.Budget)
	amount, _ := parseNumber(d.Amount)
	return models.IncomeCreate{
		IncomeTypeID: d.IncomeTypeID,
		Period:       d.Period,
		Budget:       budget.InexactFloat64(),
		Amount:       amount.InexactFloat64(),
		MonthID:      monthID,
	}, nil
}

func (d *IncomeDraft) ToUpdate() (models.IncomeUpdate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.IncomeUpdate{}, err
	}
	typeID, period := d.IncomeTypeID, d.Period
	b, _ := parseNumber(d.Budget)
	a, _ := parseNumber(d.Amount)
	budget, amount := b.InexactFloat64(), a.InexactFloat64()
	return models.IncomeUpdate{
		IncomeTypeID: &typeID,
		Period:       &period,
		Budget:       &budget,
		Amount:       &amount,
	}, nil
}
