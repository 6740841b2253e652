package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kleyson/appz-budget/internal/models"
)

type ExpenseField int

const (
	ExpenseName ExpenseField = iota
	ExpensePeriod
	ExpenseCategory
	ExpenseBudget
	ExpensePurchases
	ExpenseNotes
)

func (f ExpenseField) Next() ExpenseField {
	switch f {
	case ExpenseName:
		return ExpensePeriod
	case ExpensePeriod:
		return ExpenseCategory
	case ExpenseCategory:
		return ExpenseBudget
	case ExpenseBudget:
		return ExpensePurchases
	case ExpensePurchases:
		return ExpenseNotes
	default:
		return ExpenseName
	}
}

func (f ExpenseField) Prev() ExpenseField {
	switch f {
	case ExpenseNotes:
		return ExpensePurchases
	case ExpensePurchases:
		return ExpenseBudget
	case ExpenseBudget:
		return ExpenseCategory
	case ExpenseCategory:
		return ExpensePeriod
	case ExpensePeriod:
		return ExpenseName
	default:
		return ExpenseNotes
	}
}

func (f ExpenseField) String() string {
	switch f {
	case ExpenseName:
		return "Name"
	case ExpensePeriod:
		return "Period"
	case ExpenseCategory:
		return "Category"
	case ExpenseBudget:
		return "Budget"
	case ExpensePurchases:
		return "Purchases"
	case ExpenseNotes:
		return "Notes"
	}
	return "?"
}

// PurchaseField selects which half of a purchase line is being edited.
type PurchaseField int

const (
	PurchaseName PurchaseField = iota
	PurchaseAmount
)

func (p PurchaseField) Toggle() PurchaseField {
	if p == PurchaseName {
		return PurchaseAmount
	}
	return PurchaseName
}

type PurchaseLine struct {
	Name   string
	Amount string
	Date   *string
}

type ExpenseDraft struct {
	EditingID *int64
	Focus     ExpenseField

	Name     string
	Period   string
	Category string
	Budget   string
	Notes    string

	Purchases        []PurchaseLine
	SelectedPurchase int
	PurchaseField    PurchaseField

	seek seeker
}

// NewExpenseDraft starts a create draft with the first period and category
// preselected.
func NewExpenseDraft(opts Options) *ExpenseDraft {
	return &ExpenseDraft{
		Period:   firstName(opts.Periods),
		Category: firstName(opts.Categories),
	}
}

// EditExpenseDraft pre-fills a draft from an existing expense.
func EditExpenseDraft(e models.Expense) *ExpenseDraft {
	id := e.ID
	d := &ExpenseDraft{
		EditingID: &id,
		Name:      e.ExpenseName,
		Period:    e.Period,
		Category:  e.Category,
		Budget:    FormatAmount(e.Budget),
	}
	if e.Notes != nil {
		d.Notes = *e.Notes
	}
	for _, p := range e.Purchases {
		d.Purchases = append(d.Purchases, PurchaseLine{Name: p.Name, Amount: FormatAmount(p.Amount), Date: p.Date})
	}
	return d
}

func (d *ExpenseDraft) IsEditing() bool { return d.EditingID != nil }

func (d *ExpenseDraft) NextField() {
	d.Focus = d.Focus.Next()
	d.seek.reset()
}

func (d *ExpenseDraft) PrevField() {
	d.Focus = d.Focus.Prev()
	d.seek.reset()
}

// Input applies a typed rune to the focused field.
func (d *ExpenseDraft) Input(r rune, opts Options) {
	switch d.Focus {
	case ExpenseName:
		d.Name = appendText(d.Name, r)
	case ExpensePeriod:
		if o, ok := d.seek.push(r, opts.Periods); ok {
			d.Period = o.Name
		}
	case ExpenseCategory:
		if o, ok := d.seek.push(r, opts.Categories); ok {
			d.Category = o.Name
		}
	case ExpenseBudget:
		d.Budget = appendNumeric(d.Budget, r)
	case ExpensePurchases:
		line := d.selectedLine()
		if line == nil {
			return
		}
		if d.PurchaseField == PurchaseName {
			line.Name = appendText(line.Name, r)
		} else {
			line.Amount = appendNumeric(line.Amount, r)
		}
	case ExpenseNotes:
		d.Notes = appendText(d.Notes, r)
	}
}

func (d *ExpenseDraft) Backspace() {
	switch d.Focus {
	case ExpenseName:
		d.Name = backspace(d.Name)
	case ExpensePeriod, ExpenseCategory:
		d.seek.reset()
	case ExpenseBudget:
		d.Budget = backspace(d.Budget)
	case ExpensePurchases:
		line := d.selectedLine()
		if line == nil {
			return
		}
		if d.PurchaseField == PurchaseName {
			line.Name = backspace(line.Name)
		} else {
			line.Amount = backspace(line.Amount)
		}
	case ExpenseNotes:
		d.Notes = backspace(d.Notes)
	}
}

// CycleOption steps the focused enumerable field through opts. It is a
// no-op when the current value is not among the options.
func (d *ExpenseDraft) CycleOption(dir int, opts Options) {
	d.seek.reset()
	switch d.Focus {
	case ExpensePeriod:
		d.Period = cycleName(opts.Periods, d.Period, dir)
	case ExpenseCategory:
		d.Category = cycleName(opts.Categories, d.Category, dir)
	}
}

func (d *ExpenseDraft) selectedLine() *PurchaseLine {
	if d.SelectedPurchase < 0 || d.SelectedPurchase >= len(d.Purchases) {
		return nil
	}
	return &d.Purchases[d.SelectedPurchase]
}

// AddPurchase appends a blank line and selects it.
func (d *ExpenseDraft) AddPurchase() {
	d.Purchases = append(d.Purchases, PurchaseLine{})
	d.SelectedPurchase = len(d.Purchases) - 1
	d.PurchaseField = PurchaseName
}

// RemovePurchase drops the selected line and clamps the selection.
func (d *ExpenseDraft) RemovePurchase() {
	if d.selectedLine() == nil {
		return
	}
	i := d.SelectedPurchase
	d.Purchases = append(d.Purchases[:i:i], d.Purchases[i+1:]...)
	if d.SelectedPurchase >= len(d.Purchases) {
		d.SelectedPurchase = max(0, len(d.Purchases)-1)
	}
}

func (d *ExpenseDraft) MovePurchase(delta int) {
	if len(d.Purchases) == 0 {
		return
	}
	d.SelectedPurchase = min(max(d.SelectedPurchase+delta, 0), len(d.Purchases)-1)
}

func (d *ExpenseDraft) TogglePurchaseField() {
	d.PurchaseField = d.PurchaseField.Toggle()
}

// CalculatedCost is the sum of the purchase amounts, recomputed on every
// call. Blank or partial amounts count as zero.
func (d *ExpenseDraft) CalculatedCost() float64 {
	return d.costDecimal().InexactFloat64()
}

func (d *ExpenseDraft) costDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Purchases {
		total = total.Add(parseAmount(p.Amount))
	}
	return total
}

func (d *ExpenseDraft) Validate() []string {
	var msgs []string
	if strings.TrimSpace(d.Name) == "" {
		msgs = append(msgs, "Name is required")
	}
	if strings.TrimSpace(d.Period) == "" {
		msgs = append(msgs, "Period is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		msgs = append(msgs, "Category is required")
	}
	if _, ok := parseNumber(d.Budget); !ok {
		msgs = append(msgs, "Budget must be a valid number")
	}
	if len(d.Purchases) == 0 {
		msgs = append(msgs, "At least one purchase is required")
	} else if d.costDecimal().IsZero() {
		msgs = append(msgs, "Purchases must have amounts")
	}
	return msgs
}

func (d *ExpenseDraft) purchases() []models.Purchase {
	if len(d.Purchases) == 0 {
		return nil
	}
	out := make([]models.Purchase, 0, len(d.Purchases))
	for _, p := range d.Purchases {
		out = append(out, models.Purchase{
			Name:   strings.TrimSpace(p.Name),
			Amount: parseAmount(p.Amount).InexactFloat64(),
			Date:   p.Date,
		})
	}
	return out
}

func (d *ExpenseDraft) ToCreate(monthID int64) (models.ExpenseCreate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.ExpenseCreate{}, err
	}
	budget, _ := parseNumber(d.Budget)
	out := models.ExpenseCreate{
		ExpenseName: strings.TrimSpace(d.Name),
		Period:      d.Period,
		Category:    d.Category,
		Budget:      budget.InexactFloat64(),
		Cost:        d.CalculatedCost(),
		MonthID:     monthID,
		Purchases:   d.purchases(),
	}
	if notes := strings.TrimSpace(d.Notes); notes != "" {
		out.Notes = &notes
	}
	return out, nil
}

// ToUpdate sends every field the form captures. Notes are always sent so
// clearing them in the form clears them on the server.
func (d *ExpenseDraft) ToUpdate() (models.ExpenseUpdate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.ExpenseUpdate{}, err
	}
	name := strings.TrimSpace(d.Name)
	period, category := d.Period, d.Category
	b, _ := parseNumber(d.Budget)
	budget := b.InexactFloat64()
	cost := d.CalculatedCost()
	notes := strings.TrimSpace(d.Notes)
	return models.ExpenseUpdate{
		ExpenseName: &name,
		Period:      &period,
		Category:    &category,
		Budget:      &budget,
		Cost:        &cost,
		Notes:       &notes,
		Purchases:   d.purchases(),
	}, nil
}
