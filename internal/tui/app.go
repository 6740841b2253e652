// Package tui is the interactive dashboard: a bubbletea model that owns the
// state aggregate, routes keys through the screen and modal scopes and
// folds API results back into state.
package tui

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/api"
	"github.com/kleyson/appz-budget/internal/config"
	"github.com/kleyson/appz-budget/internal/forms"
	"github.com/kleyson/appz-budget/internal/logging"
	"github.com/kleyson/appz-budget/internal/state"
)

// ClientFactory builds an API client for the given server settings.
type ClientFactory func(url, apiKey string) *api.Client

type App struct {
	ctx       context.Context
	cfg       *config.Config
	client    *api.Client
	newClient ClientFactory
	log       *logging.Logger
	keys      *KeyRegistry
	rng       *rand.Rand

	st      *state.State
	spinner spinner.Model
	help    help.Model

	width  int
	height int
}

type Option func(*App)

func WithLogger(l *logging.Logger) Option { return func(a *App) { a.log = l } }

func WithClientFactory(f ClientFactory) Option { return func(a *App) { a.newClient = f } }

// WithRand fixes the color randomizer's source.
func WithRand(r *rand.Rand) Option { return func(a *App) { a.rng = r } }

func New(ctx context.Context, cfg *config.Config, client *api.Client, opts ...Option) App {
	a := App{
		ctx:     ctx,
		cfg:     cfg,
		client:  client,
		log:     logging.Discard(),
		keys:    NewKeyRegistry(),
		st:      state.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	if a.newClient == nil {
		a.newClient = func(url, apiKey string) *api.Client {
			return api.New(url, apiKey, api.WithLogger(a.log.WithComponent("api")))
		}
	}
	a.st.Server = *forms.NewServerDraft(cfg.Server.URL, cfg.Server.APIKey)
	if cfg.HasToken() {
		client.SetToken(cfg.Auth.Token)
	}
	return a
}

// State exposes the aggregate read-only to callers outside the loop.
func (a App) State() *state.State { return a.st }

func (a App) Init() tea.Cmd {
	if !a.client.HasToken() {
		return nil
	}
	a.st.SetSuccess("Checking saved session...")
	return a.request(a.sessionCheckCmd())
}

// request marks the app busy and starts cmd with the spinner.
func (a App) request(cmd tea.Cmd) tea.Cmd {
	a.st.Busy = true
	return tea.Batch(cmd, a.spinner.Tick)
}

func (a App) done() { a.st.Busy = false }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil
	case spinner.TickMsg:
		if !a.st.Busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKey(msg)
	case sessionCheckedMsg:
		return a.handleSessionChecked(msg)
	case loginDoneMsg:
		return a.handleLoginDone(msg)
	case dataLoadedMsg:
		a.done()
		a.applyData(msg)
		return a, nil
	case savedMsg:
		return a.handleSaved(msg)
	case passwordChangedMsg:
		return a.handlePasswordChanged(msg)
	case deletedMsg:
		return a.handleDeleted(msg)
	case paidMsg:
		return a.handlePaid(msg)
	case monthToggledMsg:
		return a.handleMonthToggled(msg)
	case clonedMsg:
		return a.handleCloned(msg)
	case reorderedMsg:
		return a.handleReordered(msg)
	}
	return a, nil
}

// failure reports an action error. Unauthorized gets its own message so
// an expired session is recognizable.
func (a App) failure(prefix string, err error) {
	a.log.Warn("action failed", "action", prefix, "err", err)
	if api.IsUnauthorized(err) {
		a.st.SetError("Session expired - press L to log out and sign in again")
		return
	}
	a.st.SetError(fmt.Sprintf("%s: %v", prefix, err))
}

func (a App) applyData(msg dataLoadedMsg) {
	st := a.st
	if msg.months != nil {
		st.SetMonths(*msg.months)
	}
	if msg.current != nil {
		st.Data.CurrentMonth = msg.current
	}
	if msg.selectMonth {
		st.SelectCurrentMonth()
	}
	if msg.categories != nil {
		st.SetCategories(*msg.categories)
	}
	if msg.periods != nil {
		st.SetPeriods(*msg.periods)
	}
	if msg.incomeTypes != nil {
		st.SetIncomeTypes(*msg.incomeTypes)
	}
	if msg.expenses != nil {
		st.SetExpenses(*msg.expenses)
	}
	if msg.incomes != nil {
		st.SetIncomes(*msg.incomes)
	}
	if msg.totals != nil {
		st.Data.Totals = msg.totals
	}
	if msg.categorySummary != nil {
		st.Data.CategorySummary = *msg.categorySummary
	}
	if msg.incomeTypeSummary != nil {
		st.Data.IncomeTypeSummary = *msg.incomeTypeSummary
	}
	if msg.periodSummary != nil {
		st.Data.PeriodSummary = msg.periodSummary
	}
	if msg.err != nil {
		a.failure("Failed to load data", msg.err)
	}
}

// Loads

func (a App) loadInitial() tea.Cmd {
	return a.request(loadCmd(a.ctx, a.client, (*loader).initial))
}

func (a App) loadMonth() tea.Cmd {
	id := a.st.SelectedMonthID()
	return a.request(loadCmd(a.ctx, a.client, func(l *loader) { l.monthData(id) }))
}

func (a App) loadMonths() tea.Cmd {
	return a.request(loadCmd(a.ctx, a.client, (*loader).months))
}

// loadTab reloads what the active tab shows, honoring the filters.
func (a App) loadTab() tea.Cmd {
	st := a.st
	monthID := st.SelectedMonthID()
	switch st.Tab {
	case state.TabExpenses:
		f := expenseFilters(st, monthID)
		return a.request(loadCmd(a.ctx, a.client, func(l *loader) { l.expenses(f) }))
	case state.TabIncome:
		f := incomeFilters(st, monthID)
		return a.request(loadCmd(a.ctx, a.client, func(l *loader) { l.incomes(f) }))
	case state.TabSettings:
		return a.request(loadCmd(a.ctx, a.client, (*loader).settings))
	default:
		return a.loadMonth()
	}
}
