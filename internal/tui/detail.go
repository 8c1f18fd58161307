// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
)

type detailLoadedMsg struct {
	gen    int
	detail model.VehicleDetail
	err    error
}

// detailModel renders one vehicle with its maintenance, expense and fuel
// history. Everything is fetched in a single detail call; the cost totals
// are summed locally from the nested collections.
type detailModel struct {
	client    *api.Client
	vehicleID int

	detail  model.VehicleDetail
	loading bool
	err     string

	gen int
}

var detailGen int

func newDetailModel(client *api.Client, vehicleID int) detailModel {
	detailGen++
	return detailModel{
		client:    client,
		vehicleID: vehicleID,
		loading:   true,
		gen:       detailGen,
	}
}

func (m detailModel) Init() tea.Cmd {
	gen, id := m.gen, m.vehicleID
	client := m.client
	return func() tea.Msg {
		d, err := client.VehicleDetail(context.Background(), id)
		return detailLoadedMsg{gen: gen, detail: d, err: err}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	if msg, ok := msg.(detailLoadedMsg); ok {
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.detail = msg.detail
	}
	return m, nil
}

func (m detailModel) totals() (maintenance, expenses float64) {
	for _, r := range m.detail.Maintenance {
		if r.Cost != nil {
			maintenance += *r.Cost
		}
	}
	for _, e := range m.detail.Expenses {
		expenses += e.Amount
	}
	return maintenance, expenses
}

func (m detailModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render(i18n.T("title.vehicle_detail")), "")

	switch {
	case m.loading:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.loading")))
	case m.err != "":
		viewItems = append(viewItems, errorStyle.Render(m.err))
	default:
		d := m.detail
		header := d.String()
		if !d.Active {
			header += " " + i18n.T("common.inactive")
		}
		viewItems = append(viewItems,
			specialStyle.Render(header),
			fmt.Sprintf("%s: %d  •  %s: %d km", i18n.T("field.yil"), d.Year, i18n.T("field.km"), d.Odometer))
		if d.Notes != "" {
			viewItems = append(viewItems, helpStyle.Render(d.Notes))
		}

		viewItems = append(viewItems, "", selectedItemStyle.Render(i18n.T("detail.maintenance")))
		if len(d.Maintenance) == 0 {
			viewItems = append(viewItems, helpStyle.Render("  "+i18n.T("common.none")))
		}
		for _, r := range d.Maintenance {
			line := fmt.Sprintf("  %s  %s  %d km", r.Date, r.Type, r.Odometer)
			if r.Cost != nil {
				line += fmt.Sprintf("  %.2f TL", *r.Cost)
			}
			viewItems = append(viewItems, line)
		}

		viewItems = append(viewItems, "", selectedItemStyle.Render(i18n.T("detail.expenses")))
		if len(d.Expenses) == 0 {
			viewItems = append(viewItems, helpStyle.Render("  "+i18n.T("common.none")))
		}
		for _, e := range d.Expenses {
			viewItems = append(viewItems, fmt.Sprintf("  %s  %s  %.2f TL", e.Date, e.Category, e.Amount))
		}

		viewItems = append(viewItems, "", selectedItemStyle.Render(i18n.T("detail.fuel")))
		if len(d.Fuel) == 0 {
			viewItems = append(viewItems, helpStyle.Render("  "+i18n.T("common.none")))
		}
		for _, f := range d.Fuel {
			viewItems = append(viewItems, fmt.Sprintf("  %s  %s  %.2f lt × %.2f = %.2f TL",
				f.Date, f.FuelType, f.Liters, f.UnitPrice, f.Liters*f.UnitPrice))
		}

		mTotal, eTotal := m.totals()
		viewItems = append(viewItems, "", totalBoxStyle.Render(fmt.Sprintf("%s: %.2f TL   %s: %.2f TL",
			i18n.T("detail.total_maintenance"), mTotal,
			i18n.T("detail.total_expense"), eTotal)))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("common.help_list")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
