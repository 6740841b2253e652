package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/state"
)

// lookup resolves msg against scopes in order, then the global scope.
func (a App) lookup(msg tea.KeyMsg, scopes ...string) Action {
	for _, scope := range scopes {
		if b := a.keys.Lookup(msg.String(), scope); b != nil {
			return b.Action
		}
	}
	return ""
}

// typedRune returns the printable rune a key event carries, if any.
func typedRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.lookup(msg, scopeGlobal) == actionQuit {
		return a, tea.Quit
	}
	if a.st.Busy {
		return a, nil
	}
	switch a.st.Screen {
	case state.ScreenLogin:
		return a.updateLogin(msg)
	case state.ScreenAPIConfig:
		return a.updateAPIConfig(msg)
	default:
		if a.st.HasModal() {
			return a.updateModal(msg)
		}
		return a.updateDashboard(msg)
	}
}

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := a.st
	d := &st.Login
	action := a.lookup(msg, scopeLogin)
	if action != actionSubmit {
		st.ClearMessage()
	}
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionSubmit:
		req, err := d.ToRequest()
		if err != nil {
			st.SetError(err.Error())
			return a, nil
		}
		return a, a.request(a.loginCmd(req.Email, req.Password))
	case actionServerConfig:
		if d.IsEmpty() {
			st.Server = *forms.NewServerDraft(a.cfg.Server.URL, a.cfg.Server.APIKey)
			st.Screen = state.ScreenAPIConfig
			return a, nil
		}
	}
	if msg.Type == tea.KeyBackspace {
		d.Backspace()
		return a, nil
	}
	if r, ok := typedRune(msg); ok {
		d.Input(r)
	}
	return a, nil
}

func (a App) updateAPIConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := a.st
	d := &st.Server
	switch a.lookup(msg, scopeAPIConfig) {
	case actionCancel:
		st.Server = *forms.NewServerDraft(a.cfg.Server.URL, a.cfg.Server.APIKey)
		st.Screen = state.ScreenLogin
		st.ClearMessage()
		return a, nil
	case actionNextField:
		d.NextField()
		return a, nil
	case actionPrevField:
		d.PrevField()
		return a, nil
	case actionSubmit:
		if msgs := d.Validate(); len(msgs) > 0 {
			st.SetError(strings.Join(msgs, "; "))
			return a, nil
		}
		return a.saveServerSettings()
	}
	if msg.Type == tea.KeyBackspace {
		d.Backspace()
		return a, nil
	}
	if r, ok := typedRune(msg); ok {
		d.Input(r)
	}
	return a, nil
}

func (a App) saveServerSettings() (tea.Model, tea.Cmd) {
	st := a.st
	if err := a.cfg.SetServer(st.Server.URL, st.Server.APIKey); err != nil {
		a.log.Error("save config", "err", err)
		st.SetError("Could not save config: " + err.Error())
	} else {
		st.SetSuccess("Server settings saved")
	}
	a.client = a.newClient(a.cfg.Server.URL, a.cfg.Server.APIKey)
	st.Screen = state.ScreenLogin
	return a, nil
}

func (a App) dashboardScopes() []string {
	if a.st.Tab == state.TabExpenses {
		return []string{scopeExpenses, scopeDashboard}
	}
	return []string{scopeDashboard}
}

func (a App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := a.st
	switch a.lookup(msg, a.dashboardScopes()...) {
	case actionQuit:
		return a, tea.Quit
	case actionHelp:
		st.OpenModal(state.HelpModal{})
		return a, nil
	case actionLogout:
		return a.logout()
	case actionNextTab:
		st.NextTab()
		return a, a.loadTab()
	case actionPrevTab:
		st.PrevTab()
		return a, a.loadTab()
	case actionJump:
		return a.jump(msg.String())
	case actionPrevMonth:
		if st.PrevMonth() {
			return a, a.loadMonth()
		}
		return a, nil
	case actionNextMonth:
		if st.NextMonth() {
			return a, a.loadMonth()
		}
		return a, nil
	case actionUp:
		return a.moveSelection(-1)
	case actionDown:
		return a.moveSelection(1)
	case actionNew:
		return a.openNew()
	case actionEdit:
		return a.openEdit()
	case actionDelete:
		return a.openDelete()
	case actionPay:
		return a.openPay()
	case actionToggleMonth:
		return a.openToggleMonth()
	case actionClone:
		return a.openClone()
	case actionMoveUp:
		return a.reorder(-1)
	case actionMoveDown:
		return a.reorder(1)
	case actionFilterPeriod:
		if st.Tab != state.TabExpenses && st.Tab != state.TabIncome {
			return a, nil
		}
		st.CyclePeriodFilter()
		return a, a.loadTab()
	case actionFilterCat:
		st.CycleCategoryFilter()
		return a, a.loadTab()
	case actionClearFilters:
		if !st.HasFilters() {
			return a, nil
		}
		st.ClearFilters()
		return a, a.loadTab()
	}
	return a, nil
}

// jump handles the digit keys: inside Settings 1-4 pick a sub-tab, 5 stays
// on Settings; elsewhere they select a tab.
func (a App) jump(k string) (tea.Model, tea.Cmd) {
	st := a.st
	n := int(k[0] - '1')
	if st.Tab == state.TabSettings && n < len(state.AllSettingsTabs) {
		st.SettingsTab = state.AllSettingsTabs[n]
		return a, nil
	}
	if n < 0 || n >= len(state.AllTabs) {
		return a, nil
	}
	st.Tab = state.AllTabs[n]
	return a, a.loadTab()
}

func (a App) moveSelection(delta int) (tea.Model, tea.Cmd) {
	st := a.st
	if st.Tab == state.TabSettings && st.SettingsTab == state.SettingsPassword {
		if delta > 0 {
			st.SettingsTab = st.SettingsTab.Next()
		} else {
			st.SettingsTab = st.SettingsTab.Prev()
		}
		return a, nil
	}
	st.MoveSelection(delta)
	return a, nil
}

func (a App) logout() (tea.Model, tea.Cmd) {
	a.client.ClearToken()
	a.st.Reset()
	a.st.Server = *forms.NewServerDraft(a.cfg.Server.URL, a.cfg.Server.APIKey)
	if err := a.cfg.ClearToken(); err != nil {
		a.log.Error("save config", "err", err)
		a.st.SetError("Could not save config: " + err.Error())
		return a, nil
	}
	a.st.SetSuccess("Logged out")
	return a, nil
}
