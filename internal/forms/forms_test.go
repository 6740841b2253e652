package forms

import (
	"encoding/json"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kleyson/appz-budget/internal/models"
)

func TestNewIncomeDraftDefaults(t *testing.T) {
	t.Parallel()
	d := NewIncomeDraft(testOptions())
	require.Equal(t, int64(7), d.IncomeTypeID)
	require.Equal(t, "Salary", d.IncomeTypeName(testOptions()))
	require.Equal(t, "Fixed Costs", d.Period)
	require.Equal(t, "0", d.Amount)

	none := NewIncomeDraft(Options{})
	require.Zero(t, none.IncomeTypeID)
	require.Contains(t, none.Validate(), "Income type is required")
}

func TestIncomeDraftValidationAndPayload(t *testing.T) {
	t.Parallel()
	opts := testOptions()
	d := NewIncomeDraft(opts)
	require.Equal(t, []string{"Budget must be a valid number"}, d.Validate())

	d.Focus = IncomeBudget
	for _, r := range "3000" {
		d.Input(r, opts)
	}
	d.Focus = IncomeTypeField
	d.CycleOption(1, opts)
	out, err := d.ToCreate(2)
	require.NoError(t, err)
	require.Equal(t, models.IncomeCreate{IncomeTypeID: 8, Period: "Fixed Costs", Budget: 3000, MonthID: 2}, out)

	d.Amount = ""
	require.Equal(t, []string{"Amount must be a valid number"}, d.Validate())
}

func TestIncomeUpdateCarriesOnlyCapturedFields(t *testing.T) {
	t.Parallel()
	d := EditIncomeDraft(models.Income{ID: 3, IncomeTypeID: 7, Period: "Variable", Budget: 10, Amount: 5, MonthID: 2})
	out, err := d.ToUpdate()
	require.NoError(t, err)
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.JSONEq(t, `{"income_type_id":7,"period":"Variable","budget":10,"amount":5}`, string(raw))
}

func TestIncomeFieldCycle(t *testing.T) {
	t.Parallel()
	f := IncomeTypeField
	for range 4 {
		f = f.Next()
	}
	require.Equal(t, IncomeTypeField, f)
	require.Equal(t, IncomeAmount, IncomeTypeField.Prev())
}

func TestNamedDraft(t *testing.T) {
	t.Parallel()
	d := NewNamedDraft(KindCategory)
	require.Equal(t, []string{"Name is required"}, d.Validate())

	for _, r := range "Rent & more" {
		d.Input(r)
	}
	d.NextField()
	for _, r := range "#zz12" {
		d.Input(r)
	}
	require.Equal(t, "Rent & more", d.Name)
	require.Equal(t, "#12", d.Color)

	d.Color = ""
	create, err := d.ToCreate()
	require.NoError(t, err)
	raw, err := json.Marshal(create)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Rent & more"}`, string(raw))

	upd, err := EditNamedDraft(KindPeriod, 4, "Weekly", "").ToUpdate()
	require.NoError(t, err)
	raw, err = json.Marshal(upd)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Weekly"}`, string(raw))
}

func TestRandomizeColorRange(t *testing.T) {
	t.Parallel()
	re := regexp.MustCompile(`^#([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
	rng := rand.New(rand.NewPCG(1, 2))
	d := NewNamedDraft(KindIncomeType)
	for range 200 {
		d.RandomizeColor(rng)
		m := re.FindStringSubmatch(d.Color)
		require.NotNil(t, m, d.Color)
		for _, hex := range m[1:] {
			v, err := strconv.ParseUint(hex, 16, 8)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, uint64(50))
			require.LessOrEqual(t, v, uint64(220))
		}
	}
}

func TestPasswordValidation(t *testing.T) {
	t.Parallel()
	d := &PasswordDraft{}
	require.Equal(t, []string{"Current password is required", "New password is required"}, d.Validate())

	d = &PasswordDraft{Current: "old", New: "short", Confirm: "short"}
	require.Equal(t, []string{"New password must be at least 8 characters"}, d.Validate())

	d = &PasswordDraft{Current: "old", New: "longenough", Confirm: "different"}
	require.Equal(t, []string{"Passwords do not match"}, d.Validate())

	d = &PasswordDraft{Current: "old", New: "longenough", Confirm: "longenough"}
	req, err := d.ToRequest()
	require.NoError(t, err)
	require.Equal(t, models.PasswordChange{CurrentPassword: "old", NewPassword: "longenough"}, req)
}

func TestPasswordDraftEditsFocusedField(t *testing.T) {
	t.Parallel()
	d := &PasswordDraft{}
	d.Input('a')
	d.NextField()
	d.Input('b')
	d.NextField()
	d.Input('c')
	d.Backspace()
	require.Equal(t, PasswordDraft{Focus: PasswordConfirm, Current: "a", New: "b"}, *d)
	d.NextField()
	require.Equal(t, PasswordCurrent, d.Focus)
}

func TestLoginDraft(t *testing.T) {
	t.Parallel()
	d := &LoginDraft{}
	require.True(t, d.IsEmpty())
	require.Len(t, d.Validate(), 2)

	for _, r := range "me@x.io" {
		d.Input(r)
	}
	d.NextField()
	d.Input('p')
	require.False(t, d.IsEmpty())
	req, err := d.ToRequest()
	require.NoError(t, err)
	require.Equal(t, "me@x.io", req.Email)
	require.Equal(t, "p", req.Password)
}

func TestServerDraft(t *testing.T) {
	t.Parallel()
	d := NewServerDraft("", "k")
	require.Equal(t, []string{"Server URL is required"}, d.Validate())
	d.Input('h')
	require.Empty(t, d.Validate())
}

func TestMatchOption(t *testing.T) {
	t.Parallel()
	opts := testOptions().Categories
	i, ok := MatchOption("HOU", opts)
	require.True(t, ok)
	require.Equal(t, 0, i)

	i, ok = MatchOption("port", opts)
	require.True(t, ok)
	require.Equal(t, 2, i)

	i, ok = MatchOption("grc", opts)
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = MatchOption("xyzzy", opts)
	require.False(t, ok)
	_, ok = MatchOption("", opts)
	require.False(t, ok)
}

func TestParsePositiveAmount(t *testing.T) {
	t.Parallel()
	v, ok := ParsePositiveAmount("12.50")
	require.True(t, ok)
	require.Equal(t, 12.5, v)
	_, ok = ParsePositiveAmount("0")
	require.False(t, ok)
	_, ok = ParsePositiveAmount(".")
	require.False(t, ok)
	require.Equal(t, "1.5", AppendAmountRune("1.", '5'))
	require.Equal(t, "1.", AppendAmountRune("1.", '.'))
}
