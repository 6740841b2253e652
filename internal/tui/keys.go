package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps key names to actions per input scope. Lookups fall
// back to the global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal      = "global"
	scopeLogin       = "login"
	scopeAPIConfig   = "api_config"
	scopeDashboard   = "dashboard"
	scopeExpenses    = "expenses"
	scopeSettings    = "settings"
	scopeForm        = "form"
	scopeExpenseForm = "expense_form"
	scopePurchases   = "purchases"
	scopeNamedForm   = "named_form"
	scopeConfirm     = "confirm"
	scopePay         = "pay"
	scopeHelp        = "help"
)

const (
	actionQuit          Action = "quit"
	actionHelp          Action = "help"
	actionLogout        Action = "logout"
	actionNextTab       Action = "next_tab"
	actionPrevTab       Action = "prev_tab"
	actionJump          Action = "jump"
	actionPrevMonth     Action = "prev_month"
	actionNextMonth     Action = "next_month"
	actionUp            Action = "up"
	actionDown          Action = "down"
	actionNew           Action = "new"
	actionEdit          Action = "edit"
	actionDelete        Action = "delete"
	actionPay           Action = "pay"
	actionToggleMonth   Action = "toggle_month"
	actionClone         Action = "clone"
	actionMoveUp        Action = "move_up"
	actionMoveDown      Action = "move_down"
	actionFilterPeriod  Action = "filter_period"
	actionFilterCat     Action = "filter_category"
	actionClearFilters  Action = "clear_filters"
	actionNextField     Action = "next_field"
	actionPrevField     Action = "prev_field"
	actionOptionNext    Action = "option_next"
	actionOptionPrev    Action = "option_prev"
	actionSubmit        Action = "submit"
	actionCancel        Action = "cancel"
	actionBackspace     Action = "backspace"
	actionServerConfig  Action = "server_config"
	actionAddPurchase   Action = "add_purchase"
	actionDelPurchase   Action = "remove_purchase"
	actionPurchaseUp    Action = "purchase_up"
	actionPurchaseDown  Action = "purchase_down"
	actionPurchaseField Action = "purchase_field"
	actionRandomColor   Action = "random_color"
	actionConfirm       Action = "confirm"
	actionClose         Action = "close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeLogin, actionNextField, []string{"tab", "down"}, "next field")
	reg(scopeLogin, actionPrevField, []string{"shift+tab", "up"}, "prev field")
	reg(scopeLogin, actionSubmit, []string{"enter"}, "login")
	reg(scopeLogin, actionServerConfig, []string{"s"}, "server (empty form)")
	reg(scopeLogin, actionQuit, []string{"esc", "ctrl+c"}, "quit")

	reg(scopeAPIConfig, actionNextField, []string{"tab", "down"}, "next field")
	reg(scopeAPIConfig, actionPrevField, []string{"shift+tab", "up"}, "prev field")
	reg(scopeAPIConfig, actionSubmit, []string{"enter"}, "save")
	reg(scopeAPIConfig, actionCancel, []string{"esc"}, "back")

	reg(scopeDashboard, actionNextTab, []string{"tab"}, "next tab")
	reg(scopeDashboard, actionPrevTab, []string{"shift+tab"}, "prev tab")
	reg(scopeDashboard, actionJump, []string{"1-5", "1", "2", "3", "4", "5"}, "jump")
	reg(scopeDashboard, actionPrevMonth, []string{"h", "left"}, "prev month")
	reg(scopeDashboard, actionNextMonth, []string{"l", "right"}, "next month")
	reg(scopeDashboard, actionUp, []string{"k", "up"}, "up")
	reg(scopeDashboard, actionDown, []string{"j", "down"}, "down")
	reg(scopeDashboard, actionNew, []string{"n"}, "new")
	reg(scopeDashboard, actionEdit, []string{"e", "enter"}, "edit")
	reg(scopeDashboard, actionDelete, []string{"d"}, "delete")
	reg(scopeDashboard, actionToggleMonth, []string{"c"}, "close/open month")
	reg(scopeDashboard, actionFilterPeriod, []string{"f"}, "period filter")
	reg(scopeDashboard, actionClearFilters, []string{"x"}, "clear filters")
	reg(scopeDashboard, actionHelp, []string{"?"}, "help")
	reg(scopeDashboard, actionLogout, []string{"L"}, "logout")
	reg(scopeDashboard, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeExpenses, actionPay, []string{"p"}, "pay")
	reg(scopeExpenses, actionFilterCat, []string{"g"}, "category filter")
	reg(scopeExpenses, actionClone, []string{"C"}, "clone to next month")
	reg(scopeExpenses, actionMoveUp, []string{"K"}, "move up")
	reg(scopeExpenses, actionMoveDown, []string{"J"}, "move down")

	reg(scopeForm, actionNextField, []string{"tab"}, "next field")
	reg(scopeForm, actionPrevField, []string{"shift+tab"}, "prev field")
	reg(scopeForm, actionOptionNext, []string{"right"}, "next option")
	reg(scopeForm, actionOptionPrev, []string{"left"}, "prev option")
	reg(scopeForm, actionBackspace, []string{"backspace"}, "delete char")
	reg(scopeForm, actionSubmit, []string{"enter"}, "save")
	reg(scopeForm, actionCancel, []string{"esc"}, "cancel")

	reg(scopePurchases, actionAddPurchase, []string{"ctrl+n", "insert"}, "add purchase")
	reg(scopePurchases, actionDelPurchase, []string{"ctrl+d", "delete"}, "remove purchase")
	reg(scopePurchases, actionPurchaseUp, []string{"up"}, "prev purchase")
	reg(scopePurchases, actionPurchaseDown, []string{"down"}, "next purchase")
	reg(scopePurchases, actionPurchaseField, []string{"left", "right"}, "name/amount")

	reg(scopeNamedForm, actionRandomColor, []string{"ctrl+r"}, "random color")

	reg(scopeConfirm, actionConfirm, []string{"y"}, "confirm")
	reg(scopeConfirm, actionCancel, []string{"n", "esc"}, "cancel")

	reg(scopePay, actionConfirm, []string{"enter", "y"}, "pay")
	reg(scopePay, actionCancel, []string{"esc", "n"}, "cancel")
	reg(scopePay, actionBackspace, []string{"backspace"}, "delete char")

	reg(scopeHelp, actionClose, []string{"any"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil || len(b.Keys) == 0 {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings converts a scope's bindings for the bubbles help view. The
// first key of each binding is its label.
func (r *KeyRegistry) HelpBindings(scopes ...string) []key.Binding {
	var out []key.Binding
	for _, scope := range scopes {
		for _, b := range r.BindingsForScope(scope) {
			out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
		}
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Uppercase stays distinct from its lowercase binding.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
