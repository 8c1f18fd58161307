// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
)

// statsTab identifies one of the analysis screens.
type statsTab int

const (
	tabMonthly statsTab = iota
	tabCategories
	tabComparison
	tabDue
	tabCount
)

func (t statsTab) titleID() string {
	switch t {
	case tabMonthly:
		return "stats.monthly"
	case tabCategories:
		return "stats.categories"
	case tabComparison:
		return "stats.comparison"
	default:
		return "stats.maintenance_due"
	}
}

// dueLine is one vehicle's next-service status.
type dueLine struct {
	text    string
	overdue bool
}

// statsDataMsg delivers the rendered rows of one tab.
type statsDataMsg struct {
	gen   int
	tab   statsTab
	rows  []chartRow
	lines []dueLine
	err   error
}

type statsModel struct {
	client *api.Client
	data   *cache.Cache

	tab     statsTab
	rows    []chartRow
	lines   []dueLine
	loading bool
	err     string
	width   int

	gen int
}

var statsGen int

func newStatsModel(client *api.Client, data *cache.Cache, width int) statsModel {
	statsGen++
	return statsModel{
		client:  client,
		data:    data,
		loading: true,
		width:   width,
		gen:     statsGen,
	}
}

func (m statsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m statsModel) loadCmd() tea.Cmd {
	gen, tab := m.gen, m.tab
	client, data := m.client, m.data
	return func() tea.Msg {
		ctx := context.Background()
		switch tab {
		case tabMonthly:
			series, err := client.MonthlySpend(ctx, 0, 6)
			rows := make([]chartRow, 0, len(series))
			for _, p := range series {
				rows = append(rows, chartRow{label: p.Month, value: p.Total})
			}
			return statsDataMsg{gen: gen, tab: tab, rows: rows, err: err}

		case tabCategories:
			shares, err := client.CategoryDistribution(ctx, 0)
			rows := make([]chartRow, 0, len(shares))
			for _, s := range shares {
				rows = append(rows, chartRow{label: s.Category, value: s.Total})
			}
			return statsDataMsg{gen: gen, tab: tab, rows: rows, err: err}

		case tabComparison:
			comp, err := client.VehicleComparison(ctx)
			rows := make([]chartRow, 0, len(comp))
			for _, c := range comp {
				rows = append(rows, chartRow{label: c.Plate, value: c.Total})
			}
			return statsDataMsg{gen: gen, tab: tab, rows: rows, err: err}

		default:
			vehicles, err := cache.GetOr(ctx, data, cache.KeyVehicles,
				func(ctx context.Context) ([]model.Vehicle, error) {
					return client.Vehicles(ctx)
				})
			if err != nil {
				return statsDataMsg{gen: gen, tab: tab, err: err}
			}
			var lines []dueLine
			for _, v := range vehicles {
				if !v.Active {
					continue
				}
				due, err := client.MaintenanceDue(ctx, v.ID)
				if err != nil {
					if api.KindOf(err) == api.FailureNotFound {
						// No scheduled service for this vehicle.
						continue
					}
					return statsDataMsg{gen: gen, tab: tab, err: err}
				}
				line := dueLine{text: i18n.T("stats.due_km", due.Plate, due.Remaining)}
				if due.Overdue {
					line = dueLine{text: due.Plate + ": " + i18n.T("stats.overdue"), overdue: true}
				}
				lines = append(lines, line)
			}
			return statsDataMsg{gen: gen, tab: tab, lines: lines}
		}
	}
}

func (m statsModel) Update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		if msg.gen != m.gen || msg.tab != m.tab {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.rows = msg.rows
		m.lines = msg.lines
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "shift+tab":
			m.tab--
			if m.tab < 0 {
				m.tab = tabCount - 1
			}
		case "right", "tab":
			m.tab = (m.tab + 1) % tabCount
		default:
			return m, nil
		}
		m.loading = true
		m.rows = nil
		m.lines = nil
		return m, m.loadCmd()
	}
	return m, nil
}

func (m statsModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render(i18n.T("title.stats")), "")

	var tabs []string
	for t := statsTab(0); t < tabCount; t++ {
		label := i18n.T(t.titleID())
		if t == m.tab {
			tabs = append(tabs, selectedItemStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, helpStyle.Render(" "+label+" "))
		}
	}
	viewItems = append(viewItems, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "")

	switch {
	case m.loading:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.loading")))
	case m.err != "":
		viewItems = append(viewItems, errorStyle.Render(m.err))
	case m.tab == tabDue:
		if len(m.lines) == 0 {
			viewItems = append(viewItems, helpStyle.Render(i18n.T("common.none")))
		}
		for _, line := range m.lines {
			style := itemStyle
			if line.overdue {
				style = errorStyle
			}
			viewItems = append(viewItems, style.Render(line.text))
		}
	default:
		viewItems = append(viewItems, barChart(m.rows, m.width))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(←/→ "+i18n.T("common.back")+": esc)"))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
