// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/buildvars"
	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/config"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
	"github.com/aractakip/aractakip/internal/state"
)

// viewState identifies the screen currently routed to.
type viewState int

const (
	loginView viewState = iota
	registerView
	menuView
	overviewView
	vehiclesView
	vehicleDetailView
	vehicleFormView
	maintenanceFormView
	expenseFormView
	fuelFormView
	statsView
	usersView
	userFormView
	settingsView
	passwordFormView
)

// authExpiredMsg is injected from the pipeline's expiry callback.
type authExpiredMsg struct{}

type overviewLoadedMsg struct {
	gen    int
	count  model.VehicleCount
	series []model.MonthlySpend
	err    error
}

// menuEntry binds a menu label to the view it opens. adminOnly entries are
// hidden from regular users.
type menuEntry struct {
	labelID   string
	view      viewState
	adminOnly bool
	quit      bool
}

func menuEntries() []menuEntry {
	return []menuEntry{
		{labelID: "menu.overview", view: overviewView},
		{labelID: "menu.vehicles", view: vehiclesView},
		{labelID: "menu.add_maintenance", view: maintenanceFormView},
		{labelID: "menu.add_expense", view: expenseFormView},
		{labelID: "menu.add_fuel", view: fuelFormView},
		{labelID: "menu.stats", view: statsView},
		{labelID: "menu.users", view: usersView, adminOnly: true},
		{labelID: "menu.settings", view: settingsView},
		{labelID: "menu.quit", quit: true},
	}
}

type mainModel struct {
	client *api.Client
	store  *state.Store
	data   *cache.Cache
	cfg    *config.Config

	view     viewState
	returnTo viewState
	width    int
	height   int

	menuCursor int
	status     string
	loginErr   string

	login    loginModel
	form     entryFormModel
	vehicles vehiclesModel
	detail   detailModel
	stats    statsModel
	users    usersModel
	settings settingsModel

	overview    overviewLoadedMsg
	overviewGen int
}

var overviewGen int

func newMainModel(client *api.Client, store *state.Store, data *cache.Cache, cfg *config.Config) mainModel {
	m := mainModel{
		client:   client,
		store:    store,
		data:     data,
		cfg:      cfg,
		view:     loginView,
		returnTo: menuView,
		login:    newLoginModel(client),
		settings: newSettingsModel(store, cfg),
	}
	if client.IsAuthenticated() {
		m.view = menuView
	}
	return m
}

func (m mainModel) Init() tea.Cmd {
	if m.view == loginView {
		return m.login.Init()
	}
	return nil
}

func (m mainModel) visibleMenu() []menuEntry {
	entries := menuEntries()
	if m.client.Role() == model.RoleAdmin {
		return entries
	}
	filtered := entries[:0:0]
	for _, e := range entries {
		if !e.adminOnly {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (m mainModel) loadOverviewCmd() tea.Cmd {
	gen := m.overviewGen
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		count, err := client.VehicleCount(ctx)
		if err != nil {
			return overviewLoadedMsg{gen: gen, err: err}
		}
		series, err := client.MonthlySpend(ctx, 0, 6)
		return overviewLoadedMsg{gen: gen, count: count, series: series, err: err}
	}
}

// open switches to a view, constructing its model fresh so stale async
// results from an earlier visit are ignored by generation checks.
func (m mainModel) open(view viewState) (mainModel, tea.Cmd) {
	m.status = ""
	m.view = view
	switch view {
	case loginView:
		m.login = newLoginModel(m.client)
		return m, m.login.Init()
	case registerView:
		m.form = newRegisterForm(m.client, m.data)
		return m, m.form.Init()
	case overviewView:
		overviewGen++
		m.overviewGen = overviewGen
		m.overview = overviewLoadedMsg{}
		return m, m.loadOverviewCmd()
	case vehiclesView:
		m.vehicles = newVehiclesModel(m.client, m.data)
		return m, m.vehicles.Init()
	case vehicleFormView:
		m.form = newVehicleForm(m.client, m.data)
		return m, m.form.Init()
	case maintenanceFormView:
		m.form = newMaintenanceForm(m.client, m.data)
		return m, m.form.Init()
	case expenseFormView:
		m.form = newExpenseForm(m.client, m.data)
		return m, m.form.Init()
	case fuelFormView:
		m.form = newFuelForm(m.client, m.data)
		return m, m.form.Init()
	case statsView:
		m.stats = newStatsModel(m.client, m.data, m.width)
		return m, m.stats.Init()
	case usersView:
		m.users = newUsersModel(m.client, m.data)
		return m, m.users.Init()
	case userFormView:
		m.form = newUserForm(m.client, m.data)
		return m, m.form.Init()
	case passwordFormView:
		m.form = newPasswordForm(m.client, m.data)
		return m, m.form.Init()
	}
	return m, nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stats.width = msg.Width

	case authExpiredMsg:
		// Ignore while already on an unauthenticated screen so a burst of
		// expired calls cannot bounce the user around.
		if m.view == loginView || m.view == registerView {
			return m, nil
		}
		next, cmd := m.open(loginView)
		next.loginErr = i18n.T("err.auth_expired")
		return next, cmd

	case loggedInMsg:
		m.loginErr = ""
		m.menuCursor = 0
		next, cmd := m.open(menuView)
		return next, cmd

	case loginResultMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case formClosedMsg:
		if m.view == registerView {
			next, cmd := m.open(loginView)
			if msg.submitted {
				next.login.status = i18n.T("auth.register_success")
			}
			return next, cmd
		}
		target := m.returnTo
		m.returnTo = menuView
		next, cmd := m.open(target)
		if msg.submitted {
			switch target {
			case settingsView:
				next.settings.status = i18n.T("settings.password_changed")
			case vehiclesView:
				next.vehicles.status = i18n.T("common.saved")
			case usersView:
				next.users.status = i18n.T("common.saved")
			default:
				next.status = i18n.T("common.saved")
			}
		}
		return next, cmd

	case openVehicleFormMsg:
		m.returnTo = vehiclesView
		return m.openAndReturn(vehicleFormView)

	case openVehicleDetailMsg:
		m.view = vehicleDetailView
		m.detail = newDetailModel(m.client, msg.id)
		return m, m.detail.Init()

	case openUserFormMsg:
		m.returnTo = usersView
		return m.openAndReturn(userFormView)

	case openPasswordFormMsg:
		m.returnTo = settingsView
		return m.openAndReturn(passwordFormView)

	case overviewLoadedMsg:
		if msg.gen == m.overviewGen {
			m.overview = msg
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m.route(msg)
}

func (m mainModel) openAndReturn(view viewState) (tea.Model, tea.Cmd) {
	next, cmd := m.open(view)
	return next, cmd
}

// updateKey handles router-level keys and falls through to the active view.
func (m mainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case loginView:
		if msg.String() == "f2" {
			next, cmd := m.open(registerView)
			return next, cmd
		}

	case menuView:
		entries := m.visibleMenu()
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
			return m, nil
		case "down", "j":
			if m.menuCursor < len(entries)-1 {
				m.menuCursor++
			}
			return m, nil
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			entry := entries[m.menuCursor]
			if entry.quit {
				return m, tea.Quit
			}
			next, cmd := m.open(entry.view)
			return next, cmd
		}
		return m, nil

	case overviewView, vehicleDetailView, statsView, usersView, settingsView:
		if msg.String() == "esc" {
			back := menuView
			if m.view == vehicleDetailView {
				back = vehiclesView
			}
			next, cmd := m.open(back)
			return next, cmd
		}

	case vehiclesView:
		// The list intercepts esc only while its odometer prompt is open.
		if msg.String() == "esc" && m.vehicles.promptID == 0 {
			next, cmd := m.open(menuView)
			return next, cmd
		}
	}
	return m.route(msg)
}

// route forwards a message to the model that owns the current view.
func (m mainModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case loginView:
		m.login, cmd = m.login.Update(msg)
	case registerView, vehicleFormView, maintenanceFormView, expenseFormView, fuelFormView, userFormView, passwordFormView:
		m.form, cmd = m.form.Update(msg)
	case vehiclesView:
		m.vehicles, cmd = m.vehicles.Update(msg)
	case vehicleDetailView:
		m.detail, cmd = m.detail.Update(msg)
	case statsView:
		m.stats, cmd = m.stats.Update(msg)
	case usersView:
		m.users, cmd = m.users.Update(msg)
	case settingsView:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m mainModel) viewMenu() string {
	viewItems := []string{
		mainTitleStyle.Render("🚗 " + i18n.T("menu.title")),
	}
	for i, e := range m.visibleMenu() {
		label := i18n.T(e.labelID)
		if i == m.menuCursor {
			viewItems = append(viewItems, selectedItemStyle.Render("> "+label))
		} else {
			viewItems = append(viewItems, itemStyle.Render("  "+label))
		}
	}
	if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}
	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("common.help_list")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}

func (m mainModel) viewOverview() string {
	viewItems := []string{titleStyle.Render(i18n.T("menu.overview")), ""}

	switch {
	case m.overview.err != nil:
		viewItems = append(viewItems, errorStyle.Render(m.overview.err.Error()))
	case m.overview.gen == 0:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.loading")))
	default:
		viewItems = append(viewItems,
			totalBoxStyle.Render(fmt.Sprintf("%s: %d / %d",
				i18n.T("menu.vehicles"), m.overview.count.Active, m.overview.count.Total)),
			"",
			selectedItemStyle.Render(i18n.T("stats.monthly")))
		rows := make([]chartRow, 0, len(m.overview.series))
		for _, p := range m.overview.series {
			rows = append(rows, chartRow{label: p.Month, value: p.Total})
		}
		viewItems = append(viewItems, barChart(rows, m.width))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("common.help_list")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}

func (m mainModel) View() string {
	var body string
	switch m.view {
	case loginView:
		body = m.login.View()
		if m.loginErr != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, "", errorStyle.Render(m.loginErr))
		}
	case registerView:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.form.View(), "", helpStyle.Render(i18n.T("register.hint")))
	case menuView:
		body = m.viewMenu()
	case overviewView:
		body = m.viewOverview()
	case vehiclesView:
		body = m.vehicles.View()
	case vehicleDetailView:
		body = m.detail.View()
	case statsView:
		body = m.stats.View()
	case usersView:
		body = m.users.View()
	case settingsView:
		body = m.settings.View()
	default:
		body = m.form.View()
	}

	// Margins of docStyle eat two columns on each side.
	footerWidth := m.width - 4
	footer := helpStyle.Render(alignFooter(
		i18n.T("menu.title"), "aractakip "+buildvars.VersionOrDefault("dev"), footerWidth))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

// Run starts the interactive program. The pipeline's expiry callback is
// subscribed exactly once, before the first frame, and injects a message
// instead of touching the model directly.
func Run(client *api.Client, store *state.Store, data *cache.Cache, cfg *config.Config) error {
	if theme := store.Get(state.KeyTheme); theme != "" {
		SetTheme(theme)
	}

	p := tea.NewProgram(newMainModel(client, store, data, cfg), tea.WithAltScreen())
	client.OnAuthExpired(func() {
		p.Send(authExpiredMsg{})
	})
	_, err := p.Run()
	return err
}
