package state

// Screen is the top-level view.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenAPIConfig
	ScreenDashboard
)

// Tab is a dashboard tab. The order is the cycling order.
type Tab int

const (
	TabSummary Tab = iota
	TabExpenses
	TabIncome
	TabCharts
	TabSettings
)

var AllTabs = []Tab{TabSummary, TabExpenses, TabIncome, TabCharts, TabSettings}

func (t Tab) Next() Tab {
	switch t {
	case TabSummary:
		return TabExpenses
	case TabExpenses:
		return TabIncome
	case TabIncome:
		return TabCharts
	case TabCharts:
		return TabSettings
	default:
		return TabSummary
	}
}

func (t Tab) Prev() Tab {
	switch t {
	case TabSettings:
		return TabCharts
	case TabCharts:
		return TabIncome
	case TabIncome:
		return TabExpenses
	case TabExpenses:
		return TabSummary
	default:
		return TabSettings
	}
}

func (t Tab) String() string {
	switch t {
	case TabSummary:
		return "Summary"
	case TabExpenses:
		return "Expenses"
	case TabIncome:
		return "Income"
	case TabCharts:
		return "Charts"
	case TabSettings:
		return "Settings"
	}
	return "?"
}

type SettingsTab int

const (
	SettingsCategories SettingsTab = iota
	SettingsPeriods
	SettingsIncomeTypes
	SettingsPassword
)

var AllSettingsTabs = []SettingsTab{SettingsCategories, SettingsPeriods, SettingsIncomeTypes, SettingsPassword}

func (t SettingsTab) Next() SettingsTab {
	switch t {
	case SettingsCategories:
		return SettingsPeriods
	case SettingsPeriods:
		return SettingsIncomeTypes
	case SettingsIncomeTypes:
		return SettingsPassword
	default:
		return SettingsCategories
	}
}

func (t SettingsTab) Prev() SettingsTab {
	switch t {
	case SettingsPassword:
		return SettingsIncomeTypes
	case SettingsIncomeTypes:
		return SettingsPeriods
	case SettingsPeriods:
		return SettingsCategories
	default:
		return SettingsPassword
	}
}

func (t SettingsTab) String() string {
	switch t {
	case SettingsCategories:
		return "Categories"
	case SettingsPeriods:
		return "Periods"
	case SettingsIncomeTypes:
		return "Income Types"
	case SettingsPassword:
		return "Password"
	}
	return "?"
}

// wrap moves idx by delta over n items with wraparound.
func wrap(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

// clamp keeps idx inside [0, n); an empty list yields 0, which callers
// treat as no selection through inRange.
func clamp(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func inRange(idx, n int) bool { return idx >= 0 && idx < n }
