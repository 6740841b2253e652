package forms

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/kleyson/appz-budget/internal/models"
)

// NamedKind is the entity a NamedDraft edits.
type NamedKind int

const (
	KindCategory NamedKind = iota
	KindPeriod
	KindIncomeType
)

func (k NamedKind) String() string {
	switch k {
	case KindCategory:
		return "Category"
	case KindPeriod:
		return "Period"
	case KindIncomeType:
		return "Income type"
	}
	return "?"
}

type NamedField int

const (
	NamedName NamedField = iota
	NamedColor
)

func (f NamedField) Next() NamedField {
	if f == NamedName {
		return NamedColor
	}
	return NamedName
}

// Prev equals Next for a two-field cycle.
func (f NamedField) Prev() NamedField { return f.Next() }

// NamedDraft edits a category, period or income type.
type NamedDraft struct {
	Kind      NamedKind
	EditingID *int64
	Focus     NamedField
	Name      string
	Color     string
}

func NewNamedDraft(kind NamedKind) *NamedDraft {
	return &NamedDraft{Kind: kind}
}

func EditNamedDraft(kind NamedKind, id int64, name, color string) *NamedDraft {
	return &NamedDraft{Kind: kind, EditingID: &id, Name: name, Color: color}
}

func (d *NamedDraft) IsEditing() bool { return d.EditingID != nil }

func (d *NamedDraft) NextField() { d.Focus = d.Focus.Next() }
func (d *NamedDraft) PrevField() { d.Focus = d.Focus.Prev() }

func (d *NamedDraft) Input(r rune) {
	if d.Focus == NamedName {
		d.Name = appendText(d.Name, r)
		return
	}
	if r == '#' || strings.ContainsRune("0123456789abcdefABCDEF", r) {
		d.Color = appendText(d.Color, r)
	}
}

func (d *NamedDraft) Backspace() {
	if d.Focus == NamedName {
		d.Name = backspace(d.Name)
		return
	}
	d.Color = backspace(d.Color)
}

// RandomizeColor sets a #rrggbb color with every channel in 50..220 so the
// result reads on both dark and light terminals.
func (d *NamedDraft) RandomizeColor(rng *rand.Rand) {
	channel := func() int {
		if rng == nil {
			return 50 + rand.IntN(171)
		}
		return 50 + rng.IntN(171)
	}
	d.Color = fmt.Sprintf("#%02x%02x%02x", channel(), channel(), channel())
}

func (d *NamedDraft) Validate() []string {
	if strings.TrimSpace(d.Name) == "" {
		return []string{"Name is required"}
	}
	return nil
}

func (d *NamedDraft) ToCreate() (models.NamedCreate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.NamedCreate{}, err
	}
	return models.NamedCreate{Name: strings.TrimSpace(d.Name), Color: strings.TrimSpace(d.Color)}, nil
}

// ToUpdate always sends the name; the color only when set.
func (d *NamedDraft) ToUpdate() (models.NamedUpdate, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.NamedUpdate{}, err
	}
	name := strings.TrimSpace(d.Name)
	out := models.NamedUpdate{Name: &name}
	if color := strings.TrimSpace(d.Color); color != "" {
		out.Color = &color
	}
	return out, nil
}
