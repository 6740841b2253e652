package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/models"
	"github.com/kleyson/appz-budget/internal/state"
)

const appName = "Budget"

func (a App) View() string {
	switch a.st.Screen {
	case state.ScreenLogin:
		return a.viewLogin()
	case state.ScreenAPIConfig:
		return a.viewAPIConfig()
	default:
		return a.viewDashboard()
	}
}

func money(v float64) string {
	if v < 0 {
		return "-$" + forms.FormatAmount(math.Abs(v))
	}
	return "$" + forms.FormatAmount(v)
}

func field(label, value string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render("> "+label+": ") + inputStyle.Render(value+"_")
	}
	return labelStyle.Render("  "+label+": ") + inputStyle.Render(value)
}

func mask(s string) string { return strings.Repeat("*", len([]rune(s))) }

func (a App) centered(body string) string {
	box := listBoxStyle.Padding(1, 3).Render(body)
	if a.width <= 0 || a.height <= 0 {
		return box
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

func (a App) statusLine() string {
	m := a.st.Message
	switch {
	case m.Text == "":
		return ""
	case m.IsError:
		return errorTextStyle.Render(m.Text)
	default:
		return successTextStyle.Render(m.Text)
	}
}

func (a App) busyMark() string {
	if !a.st.Busy {
		return ""
	}
	return a.spinner.View() + " "
}

// Login and server settings

func (a App) viewLogin() string {
	d := a.st.Login
	lines := []string{
		titleStyle.Render(appName + " - Sign in"),
		dimStyle.Render(a.cfg.Server.URL),
		"",
		field("Email", d.Email, d.Focus == forms.LoginEmail),
		field("Password", mask(d.Password), d.Focus == forms.LoginPassword),
		"",
		a.busyMark() + a.statusLine(),
		a.help.ShortHelpView(a.keys.HelpBindings(scopeLogin)),
	}
	return a.centered(strings.Join(lines, "\n"))
}

func (a App) viewAPIConfig() string {
	d := a.st.Server
	lines := []string{
		titleStyle.Render("Server settings"),
		"",
		field("Server URL", d.URL, d.Focus == forms.ServerURL),
		field("API key", d.APIKey, d.Focus == forms.ServerAPIKey),
		"",
		a.statusLine(),
		a.help.ShortHelpView(a.keys.HelpBindings(scopeAPIConfig)),
	}
	return a.centered(strings.Join(lines, "\n"))
}

// Dashboard

func (a App) viewDashboard() string {
	parts := []string{a.header(), a.body(), a.statusBar(), a.footer()}
	view := strings.Join(parts, "\n")
	if a.st.Modal != nil {
		return renderOverlay(view, a.modalView(), a.width, a.height)
	}
	return view
}

func (a App) header() string {
	st := a.st
	var tabs []string
	for i, t := range state.AllTabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == st.Tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	line := headerAppStyle.Render(appName) + tabSepStyle.Render("  ") + strings.Join(tabs, tabSepStyle.Render("│"))
	if a.width > 0 {
		line = headerBarStyle.Width(a.width).Render(line)
	} else {
		line = headerBarStyle.Render(line)
	}

	month := dimStyle.Render("no month")
	if m, ok := st.SelectedMonth(); ok {
		month = monthStyle.Render("< " + m.DisplayName() + " >")
		if m.IsClosed {
			month += " " + closedBadgeStyle.Render("[closed]")
		}
	}
	info := []string{a.busyMark() + month}
	if st.PeriodFilter != "" {
		info = append(info, filterStyle.Render("period: "+st.PeriodFilter))
	}
	if st.CategoryFilter != "" {
		info = append(info, filterStyle.Render("category: "+st.CategoryFilter))
	}
	if st.User != nil {
		info = append(info, dimStyle.Render(st.User.Email))
	}
	return line + "\n" + strings.Join(info, "  ")
}

func (a App) statusBar() string {
	line := a.statusLine()
	if a.width > 0 {
		return statusBarStyle.Width(a.width).Render(line)
	}
	return statusBarStyle.Render(line)
}

func (a App) footer() string {
	scopes := a.dashboardScopes()
	content := a.help.ShortHelpView(a.keys.HelpBindings(scopes...))
	if a.width > 0 {
		return footerStyle.Width(a.width).Render(content)
	}
	return footerStyle.Render(content)
}

func (a App) body() string {
	switch a.st.Tab {
	case state.TabSummary:
		return a.viewSummary()
	case state.TabExpenses:
		return a.viewExpenses()
	case state.TabIncome:
		return a.viewIncome()
	case state.TabCharts:
		return a.viewCharts()
	default:
		return a.viewSettings()
	}
}

func section(title, content string) string {
	return listBoxStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// grid renders rows with the shared table look; selected is -1 for none.
func grid(headers []string, rows [][]string, selected int) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(sepStyle).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row == selected:
				return selectedRowStyle
			default:
				return tableCellStyle
			}
		}).
		String()
}

func (a App) viewSummary() string {
	d := a.st.Data
	var out []string
	if t := d.Totals; t != nil {
		rows := [][]string{
			{"Income", money(t.TotalBudgetedIncome), money(t.TotalCurrentIncome)},
			{"Expenses", money(t.TotalBudgetedExpenses), money(t.TotalCurrentExpenses)},
			{"Balance", money(t.BalanceBudgeted()), money(t.BalanceCurrent())},
		}
		totals := grid([]string{"", "Budgeted", "Current"}, rows, -1)
		var notes []string
		if t.ExpensesOverBudget() {
			notes = append(notes, negativeStyle.Render("Expenses are over budget"))
		}
		if t.IncomeUnderBudget() {
			notes = append(notes, closedBadgeStyle.Render("Income is under budget"))
		}
		if len(notes) > 0 {
			totals += "\n" + strings.Join(notes, "  ")
		}
		out = append(out, section("Totals", totals))
	} else {
		out = append(out, section("Totals", dimStyle.Render("No data")))
	}

	if len(d.CategorySummary) > 0 {
		rows := make([][]string, 0, len(d.CategorySummary))
		for _, c := range d.CategorySummary {
			rows = append(rows, []string{c.Category, money(c.Budget), money(c.Total), amountStyle(c.Remaining()).Render(money(c.Remaining()))})
		}
		out = append(out, section("By category", grid([]string{"Category", "Budget", "Spent", "Remaining"}, rows, -1)))
	}
	if len(d.IncomeTypeSummary) > 0 {
		rows := make([][]string, 0, len(d.IncomeTypeSummary))
		for _, s := range d.IncomeTypeSummary {
			rows = append(rows, []string{s.IncomeType, money(s.Budget), money(s.Total), money(s.Remaining())})
		}
		out = append(out, section("By income type", grid([]string{"Income type", "Budget", "Received", "Remaining"}, rows, -1)))
	}
	if p := d.PeriodSummary; p != nil && len(p.Periods) > 0 {
		rows := make([][]string, 0, len(p.Periods)+1)
		for _, s := range p.Periods {
			rows = append(rows, []string{s.Period, money(s.TotalIncome), money(s.TotalExpenses), amountStyle(s.Difference).Render(money(s.Difference))})
		}
		rows = append(rows, []string{"Total", money(p.GrandTotalIncome), money(p.GrandTotalExpenses), amountStyle(p.GrandTotalDifference).Render(money(p.GrandTotalDifference))})
		out = append(out, section("By period", grid([]string{"Period", "Income", "Expenses", "Difference"}, rows, -1)))
	}
	return strings.Join(out, "\n")
}

func (a App) viewExpenses() string {
	es := a.st.FilteredExpenses()
	if len(es) == 0 {
		return section("Expenses", dimStyle.Render("No expenses"))
	}
	rows := make([][]string, 0, len(es))
	for _, e := range es {
		purchases := ""
		if e.HasPurchases() {
			purchases = fmt.Sprintf("%d", len(e.Purchases))
		}
		rows = append(rows, []string{
			e.ExpenseName, e.Period, e.Category,
			money(e.Budget), money(e.Cost), amountStyle(e.Remaining()).Render(money(e.Remaining())), purchases,
		})
	}
	return section("Expenses", grid([]string{"Name", "Period", "Category", "Budget", "Cost", "Remaining", "Purchases"}, rows, a.st.ExpenseSel))
}

func (a App) viewIncome() string {
	is := a.st.FilteredIncomes()
	if len(is) == 0 {
		return section("Income", dimStyle.Render("No income"))
	}
	rows := make([][]string, 0, len(is))
	for _, in := range is {
		rows = append(rows, []string{a.st.IncomeTypeName(in.IncomeTypeID), in.Period, money(in.Budget), money(in.Amount)})
	}
	return section("Income", grid([]string{"Type", "Period", "Budget", "Amount"}, rows, a.st.IncomeSel))
}

const barWidth = 30

// bar draws value against top as a filled run of blocks.
func bar(value, top float64, color lipgloss.Color) string {
	n := 0
	if top > 0 && value > 0 {
		n = min(int(math.Round(value/top*barWidth)), barWidth)
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n)) +
		sepStyle.Render(strings.Repeat("░", barWidth-n))
}

func (a App) viewCharts() string {
	d := a.st.Data
	var out []string

	if len(d.CategorySummary) > 0 {
		top, width := 0.0, 0
		for _, c := range d.CategorySummary {
			top = max(top, c.Budget, c.Total)
			width = max(width, lipgloss.Width(c.Category))
		}
		var lines []string
		for i, c := range d.CategorySummary {
			color := swatch(a.categoryColor(c.Category), i)
			if c.OverBudget {
				color = colorError
			}
			name := lipgloss.NewStyle().Width(width).Render(c.Category)
			lines = append(lines, fmt.Sprintf("%s %s %s / %s", name, bar(c.Total, top, color), money(c.Total), money(c.Budget)))
		}
		out = append(out, section("Spending by category", strings.Join(lines, "\n")))
	}

	if len(d.IncomeTypeSummary) > 0 {
		top, width := 0.0, 0
		for _, it := range d.IncomeTypeSummary {
			top = max(top, it.Budget, it.Total)
			width = max(width, lipgloss.Width(it.IncomeType))
		}
		var lines []string
		for i, it := range d.IncomeTypeSummary {
			name := lipgloss.NewStyle().Width(width).Render(it.IncomeType)
			lines = append(lines, fmt.Sprintf("%s %s %s / %s", name, bar(it.Total, top, chartColors[i%len(chartColors)]), money(it.Total), money(it.Budget)))
		}
		out = append(out, section("Income by type", strings.Join(lines, "\n")))
	}

	if p := d.PeriodSummary; p != nil && len(p.Periods) > 0 {
		top, width := 0.0, 0
		for _, s := range p.Periods {
			top = max(top, s.TotalIncome, s.TotalExpenses)
			width = max(width, lipgloss.Width(s.Period))
		}
		var lines []string
		for i, s := range p.Periods {
			name := lipgloss.NewStyle().Width(width).Render(s.Period)
			lines = append(lines,
				fmt.Sprintf("%s in  %s %s", name, bar(s.TotalIncome, top, colorSuccess), money(s.TotalIncome)),
				fmt.Sprintf("%s out %s %s", strings.Repeat(" ", width), bar(s.TotalExpenses, top, swatch(s.Color, i)), money(s.TotalExpenses)),
			)
		}
		lines = append(lines, "", fmt.Sprintf("Total: %s in, %s out, %s",
			money(p.GrandTotalIncome), money(p.GrandTotalExpenses),
			amountStyle(p.GrandTotalDifference).Render(money(p.GrandTotalDifference))))
		out = append(out, section("By period", strings.Join(lines, "\n")))
	}

	if len(out) == 0 {
		return section("Charts", dimStyle.Render("No data"))
	}
	return strings.Join(out, "\n")
}

func (a App) categoryColor(name string) string {
	for _, c := range a.st.Data.Categories {
		if c.Name == name {
			return c.Color
		}
	}
	return ""
}

func (a App) viewSettings() string {
	st := a.st
	var tabs []string
	for i, t := range state.AllSettingsTabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == st.SettingsTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	subtabs := strings.Join(tabs, " ")

	var content string
	switch st.SettingsTab {
	case state.SettingsCategories:
		content = namedGrid(st.Data.Categories, st.CategorySel)
	case state.SettingsPeriods:
		content = namedGrid(st.Data.Periods, st.PeriodSel)
	case state.SettingsIncomeTypes:
		content = namedGrid(st.Data.IncomeTypes, st.IncomeTypeSel)
	default:
		content = dimStyle.Render("Press n or enter to change your password")
	}
	return section("Settings", subtabs+"\n\n"+content)
}

type namedItem interface {
	models.Category | models.Period | models.IncomeType
}

func namedGrid[T namedItem](items []T, selected int) string {
	if len(items) == 0 {
		return dimStyle.Render("Nothing here yet")
	}
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		var name, color string
		switch v := any(it).(type) {
		case models.Category:
			name, color = v.Name, v.Color
		case models.Period:
			name, color = v.Name, v.Color
		case models.IncomeType:
			name, color = v.Name, v.Color
		}
		dot := lipgloss.NewStyle().Foreground(swatch(color, i)).Render("●")
		rows = append(rows, []string{dot + " " + name, color})
	}
	return grid([]string{"Name", "Color"}, rows, selected)
}

// Modals

func (a App) modalView() string {
	switch m := a.st.Modal.(type) {
	case state.ExpenseFormModal:
		return a.expenseFormView(m.Draft)
	case state.IncomeFormModal:
		return a.incomeFormView(m.Draft)
	case state.NamedFormModal:
		return a.namedFormView(m.Draft)
	case state.PasswordFormModal:
		return a.passwordFormView(m.Draft)
	case state.ConfirmDeleteModal:
		return a.confirmView("Delete", m.Message)
	case *state.ConfirmPayModal:
		return a.payView(m)
	case state.ConfirmCloseMonthModal:
		if m.Closing {
			return a.confirmView("Close month", fmt.Sprintf("Close %s? Items can no longer be changed.", m.MonthName))
		}
		return a.confirmView("Reopen month", fmt.Sprintf("Reopen %s?", m.MonthName))
	case state.ConfirmCloneModal:
		return a.confirmView("Clone month", fmt.Sprintf("Clone expenses and income from %s to the next month?", m.MonthName))
	case state.HelpModal:
		return a.helpView()
	default:
		return ""
	}
}

func (a App) formFooter(scopes ...string) string {
	return "\n" + a.busyMark() + a.statusLine() + "\n" + a.help.ShortHelpView(a.keys.HelpBindings(scopes...))
}

func editTitle(editing bool, noun string) string {
	if editing {
		return titleStyle.Render("Edit " + noun)
	}
	return titleStyle.Render("New " + noun)
}

func choice(value string) string {
	if value == "" {
		value = "-"
	}
	return "< " + value + " >"
}

func (a App) expenseFormView(d *forms.ExpenseDraft) string {
	lines := []string{
		editTitle(d.IsEditing(), "expense"),
		"",
		field("Name", d.Name, d.Focus == forms.ExpenseName),
		field("Period", choice(d.Period), d.Focus == forms.ExpensePeriod),
		field("Category", choice(d.Category), d.Focus == forms.ExpenseCategory),
		field("Budget", d.Budget, d.Focus == forms.ExpenseBudget),
		field("Purchases", "", d.Focus == forms.ExpensePurchases),
	}
	for i, p := range d.Purchases {
		marker := "   "
		name, amount := p.Name, p.Amount
		if d.Focus == forms.ExpensePurchases && i == d.SelectedPurchase {
			marker = " > "
			if d.PurchaseField == forms.PurchaseName {
				name += "_"
			} else {
				amount += "_"
			}
		}
		lines = append(lines, fmt.Sprintf("%s%-24s %10s", marker, name, amount))
	}
	if len(d.Purchases) > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("   Cost: %s", money(d.CalculatedCost()))))
	}
	lines = append(lines, field("Notes", d.Notes, d.Focus == forms.ExpenseNotes))
	scopes := []string{scopeForm}
	if d.Focus == forms.ExpensePurchases {
		scopes = []string{scopePurchases, scopeForm}
	}
	return strings.Join(lines, "\n") + a.formFooter(scopes...)
}

func (a App) incomeFormView(d *forms.IncomeDraft) string {
	opts := a.st.Options()
	lines := []string{
		editTitle(d.IsEditing(), "income"),
		"",
		field("Income type", choice(d.IncomeTypeName(opts)), d.Focus == forms.IncomeTypeField),
		field("Period", choice(d.Period), d.Focus == forms.IncomePeriod),
		field("Budget", d.Budget, d.Focus == forms.IncomeBudget),
		field("Amount", d.Amount, d.Focus == forms.IncomeAmount),
	}
	return strings.Join(lines, "\n") + a.formFooter(scopeForm)
}

func (a App) namedFormView(d *forms.NamedDraft) string {
	preview := ""
	if len(d.Color) == 7 {
		preview = " " + lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render("●")
	}
	lines := []string{
		editTitle(d.IsEditing(), strings.ToLower(d.Kind.String())),
		"",
		field("Name", d.Name, d.Focus == forms.NamedName),
		field("Color", d.Color, d.Focus == forms.NamedColor) + preview,
	}
	return strings.Join(lines, "\n") + a.formFooter(scopeNamedForm, scopeForm)
}

func (a App) passwordFormView(d *forms.PasswordDraft) string {
	lines := []string{
		titleStyle.Render("Change password"),
		"",
		field("Current password", mask(d.Current), d.Focus == forms.PasswordCurrent),
		field("New password", mask(d.New), d.Focus == forms.PasswordNew),
		field("Confirm password", mask(d.Confirm), d.Focus == forms.PasswordConfirm),
	}
	return strings.Join(lines, "\n") + a.formFooter(scopeForm)
}

func (a App) confirmView(title, text string) string {
	return titleStyle.Render(title) + "\n\n" + text + a.formFooter(scopeConfirm)
}

func (a App) payView(m *state.ConfirmPayModal) string {
	lines := []string{
		titleStyle.Render("Pay expense"),
		"",
		fmt.Sprintf("Add a payment to '%s'", m.ExpenseName),
		field("Amount", m.AmountInput, true),
	}
	return strings.Join(lines, "\n") + a.formFooter(scopePay)
}

func (a App) helpView() string {
	groups := [][]key.Binding{
		a.keys.HelpBindings(scopeDashboard),
		a.keys.HelpBindings(scopeExpenses),
	}
	h := a.help
	h.ShowAll = true
	return titleStyle.Render("Keys") + "\n\n" + h.FullHelpView(groups) + "\n\n" + dimStyle.Render("Press any key to close")
}
