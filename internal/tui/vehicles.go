// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
)

// openVehicleFormMsg asks the router to show the new-vehicle form.
type openVehicleFormMsg struct{}

// openVehicleDetailMsg asks the router to show a vehicle's detail view.
type openVehicleDetailMsg struct{ id int }

type vehiclesLoadedMsg struct {
	gen      int
	vehicles []model.Vehicle
	err      error
}

type vehicleDeletedMsg struct {
	gen int
	err error
}

type odometerSavedMsg struct {
	gen int
	err error
}

type vehiclesModel struct {
	client *api.Client
	data   *cache.Cache

	vehicles []model.Vehicle
	cursor   int
	loading  bool
	pending  bool
	status   string
	err      string

	// Odometer prompt state; active while promptID is non-zero.
	promptID    int
	promptInput textinput.Model

	gen int
}

var vehiclesGen int

func newVehiclesModel(client *api.Client, data *cache.Cache) vehiclesModel {
	vehiclesGen++
	return vehiclesModel{
		client:  client,
		data:    data,
		loading: true,
		gen:     vehiclesGen,
	}
}

func (m vehiclesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m vehiclesModel) loadCmd() tea.Cmd {
	gen := m.gen
	client, data := m.client, m.data
	return func() tea.Msg {
		vehicles, err := cache.GetOr(context.Background(), data, cache.KeyVehicles,
			func(ctx context.Context) ([]model.Vehicle, error) {
				return client.Vehicles(ctx)
			})
		return vehiclesLoadedMsg{gen: gen, vehicles: vehicles, err: err}
	}
}

func (m vehiclesModel) selected() (model.Vehicle, bool) {
	if m.cursor < 0 || m.cursor >= len(m.vehicles) {
		return model.Vehicle{}, false
	}
	return m.vehicles[m.cursor], true
}

func (m vehiclesModel) Update(msg tea.Msg) (vehiclesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case vehiclesLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.vehicles = msg.vehicles
		if m.cursor >= len(m.vehicles) {
			m.cursor = 0
		}
		return m, nil

	case vehicleDeletedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.status = i18n.T("vehicles.deleted")
		m.data.Invalidate(cache.KeyVehicles)
		m.loading = true
		return m, m.loadCmd()

	case odometerSavedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.status = i18n.T("vehicles.odometer_updated")
		m.promptID = 0
		m.data.Invalidate(cache.KeyVehicles)
		m.loading = true
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		if m.promptID != 0 {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "down", "j":
			if m.cursor < len(m.vehicles)-1 {
				m.cursor++
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "a":
			return m, func() tea.Msg { return openVehicleFormMsg{} }
		case "d", "enter":
			if v, ok := m.selected(); ok {
				id := v.ID
				return m, func() tea.Msg { return openVehicleDetailMsg{id: id} }
			}
		case "k":
			if v, ok := m.selected(); ok {
				m.promptID = v.ID
				t := textinput.New()
				t.Cursor.Style = focusedStyle
				t.CharLimit = 9
				t.Width = 12
				t.Prompt = ""
				t.SetValue(strconv.Itoa(v.Odometer))
				t.Focus()
				m.promptInput = t
				m.status = ""
				m.err = ""
				return m, textinput.Blink
			}
		case "c":
			if v, ok := m.selected(); ok {
				if err := clipboard.WriteAll(v.Plate); err != nil {
					m.err = err.Error()
				} else {
					m.err = ""
					m.status = i18n.T("common.copied")
				}
			}
			return m, nil
		case "x":
			if v, ok := m.selected(); ok {
				m.pending = true
				m.status = ""
				gen, id := m.gen, v.ID
				client := m.client
				return m, func() tea.Msg {
					return vehicleDeletedMsg{gen: gen, err: client.DeleteVehicle(context.Background(), id)}
				}
			}
		}
	}
	return m, nil
}

func (m vehiclesModel) updatePrompt(msg tea.KeyMsg) (vehiclesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.promptID = 0
		return m, nil
	case "enter":
		km, err := strconv.Atoi(m.promptInput.Value())
		if err != nil || km < 0 {
			m.err = i18n.T("form.integer", i18n.T("field.km"))
			return m, nil
		}
		m.pending = true
		m.err = ""
		gen, id := m.gen, m.promptID
		client := m.client
		return m, func() tea.Msg {
			return odometerSavedMsg{gen: gen, err: client.UpdateOdometer(context.Background(), id, km)}
		}
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m vehiclesModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render(i18n.T("title.vehicles")), "")

	switch {
	case m.loading:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.loading")))
	case len(m.vehicles) == 0:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("vehicles.empty")))
	default:
		for i, v := range m.vehicles {
			line := fmt.Sprintf("%s  %d km", v.String(), v.Odometer)
			style := itemStyle
			if !v.Active {
				style = inactiveItemStyle
			}
			marker := "  "
			if i == m.cursor {
				marker = "> "
				style = selectedItemStyle
			}
			viewItems = append(viewItems, marker+style.Render(line))
		}
	}

	if m.promptID != 0 {
		viewItems = append(viewItems, "",
			i18n.T("vehicles.odometer_prompt")+": "+m.promptInput.View())
	}

	if m.err != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.err))
	}
	if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("vehicles.help")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
