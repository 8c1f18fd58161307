// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// This file implements the shared entry-form model. Every record form
// (vehicle, maintenance, expense, fuel, user, password) is the same model
// instantiated with a different schema and submit function: validate on
// enter, block submission while invalid, disable the submit control while a
// call is in flight, invalidate the affected collections on success, keep
// the entered values on failure.
package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/form"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
)

// formOption is one choice of a select field.
type formOption struct {
	value string
	label string
}

// formField pairs a schema field with its interactive widget.
type formField struct {
	spec    form.Field
	input   textinput.Model
	options []formOption
	cursor  int
	checked bool
	err     string
}

// formClosedMsg signals the router that the form is done. When submitted is
// true a record was created and the status message should be shown.
type formClosedMsg struct {
	submitted bool
	schema    string
}

// formResultMsg carries the outcome of the create call.
type formResultMsg struct {
	gen int
	err error
}

// formVehiclesMsg delivers the lazily fetched vehicle options.
type formVehiclesMsg struct {
	gen      int
	vehicles []model.Vehicle
	err      error
}

// derivedRow renders a read-only value computed from the live inputs.
type derivedRow struct {
	labelID string
	compute func(values map[string]string) string
}

type entryFormModel struct {
	schema  form.Schema
	titleID string
	fields  []formField

	focusIndex int
	pending    bool
	apiErr     string

	submit     func(ctx context.Context, values map[string]string) error
	invalidate []string
	derived    *derivedRow

	needsVehicles bool
	client        *api.Client
	data          *cache.Cache

	// gen guards against a result for a form instance that was already
	// closed being applied to a fresh one.
	gen int
}

var formGen int

func newEntryForm(client *api.Client, data *cache.Cache, schema form.Schema, titleID string,
	submit func(ctx context.Context, values map[string]string) error, invalidate []string) entryFormModel {
	formGen++
	m := entryFormModel{
		schema:     schema,
		titleID:    titleID,
		submit:     submit,
		invalidate: invalidate,
		client:     client,
		data:       data,
		gen:        formGen,
	}

	for _, f := range schema.Fields {
		ff := formField{spec: f}
		switch f.Kind {
		case form.Select:
			ff.options = []formOption{{value: "", label: "-"}}
			for _, opt := range f.Options {
				ff.options = append(ff.options, formOption{value: opt, label: opt})
			}
			ff.cursor = indexOfOption(ff.options, f.Default)
		case form.Bool:
			ff.checked = f.Default == "true"
		default:
			t := textinput.New()
			t.Cursor.Style = focusedStyle
			t.CharLimit = 64
			t.Width = 40
			t.Prompt = ""
			t.SetValue(f.Default)
			if f.Kind == form.Secret {
				t.EchoMode = textinput.EchoPassword
				t.EchoCharacter = '•'
			}
			ff.input = t
		}
		if f.Name == "arac_id" {
			m.needsVehicles = true
		}
		m.fields = append(m.fields, ff)
	}

	m.applyFocus()
	return m
}

func indexOfOption(options []formOption, value string) int {
	for i, o := range options {
		if o.value == value {
			return i
		}
	}
	return 0
}

// withDerived attaches a computed read-only row to the form.
func (m entryFormModel) withDerived(labelID string, compute func(values map[string]string) string) entryFormModel {
	m.derived = &derivedRow{labelID: labelID, compute: compute}
	return m
}

func (m entryFormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.needsVehicles {
		cmds = append(cmds, m.loadVehiclesCmd())
	}
	return tea.Batch(cmds...)
}

// loadVehiclesCmd fetches the vehicle list through the shared TTL cache, so
// forms opened in sequence don't re-request it.
func (m entryFormModel) loadVehiclesCmd() tea.Cmd {
	gen := m.gen
	client, data := m.client, m.data
	return func() tea.Msg {
		vehicles, err := cache.GetOr(context.Background(), data, cache.KeyVehicles,
			func(ctx context.Context) ([]model.Vehicle, error) {
				return client.Vehicles(ctx)
			})
		return formVehiclesMsg{gen: gen, vehicles: vehicles, err: err}
	}
}

// Values snapshots the current raw inputs keyed by wire field name.
func (m entryFormModel) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		switch f.spec.Kind {
		case form.Select:
			values[f.spec.Name] = f.options[f.cursor].value
		case form.Bool:
			values[f.spec.Name] = strconv.FormatBool(f.checked)
		default:
			values[f.spec.Name] = f.input.Value()
		}
	}
	return values
}

func (m *entryFormModel) applyFocus() {
	for i := range m.fields {
		f := &m.fields[i]
		if f.spec.Kind == form.Select || f.spec.Kind == form.Bool {
			continue
		}
		if i == m.focusIndex {
			f.input.Focus()
			f.input.TextStyle = focusedStyle
		} else {
			f.input.Blur()
			f.input.TextStyle = lipgloss.NewStyle()
		}
	}
}

func (m entryFormModel) Update(msg tea.Msg) (entryFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formVehiclesMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.apiErr = msg.err.Error()
			return m, nil
		}
		for i := range m.fields {
			if m.fields[i].spec.Name != "arac_id" {
				continue
			}
			options := []formOption{{value: "", label: "-"}}
			for _, v := range msg.vehicles {
				label := v.String()
				if !v.Active {
					label += " " + i18n.T("common.inactive")
				}
				options = append(options, formOption{value: strconv.Itoa(v.ID), label: label})
			}
			m.fields[i].options = options
			if m.fields[i].cursor >= len(options) {
				m.fields[i].cursor = 0
			}
		}
		return m, nil

	case formResultMsg:
		if msg.gen != m.gen {
			// The result belongs to a disposed form; drop it.
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			// The form stays open with the entered values intact.
			m.apiErr = msg.err.Error()
			return m, nil
		}
		// Invalidation happens strictly after the success acknowledgment.
		m.data.Invalidate(m.invalidate...)
		schema := m.schema.Name
		return m, func() tea.Msg { return formClosedMsg{submitted: true, schema: schema} }

	case tea.KeyMsg:
		if m.pending {
			// A call is in flight; the triggering control is disabled.
			return m, nil
		}
		switch msg.String() {
		case "esc":
			// Canceling never issues a network call.
			return m, func() tea.Msg { return formClosedMsg{} }

		case " ":
			if m.focusIndex < len(m.fields) {
				if f := &m.fields[m.focusIndex]; f.spec.Kind == form.Bool {
					f.checked = !f.checked
					return m, nil
				}
			}

		case "left", "right":
			if m.focusIndex < len(m.fields) {
				if f := &m.fields[m.focusIndex]; f.spec.Kind == form.Select {
					if msg.String() == "left" {
						f.cursor--
						if f.cursor < 0 {
							f.cursor = len(f.options) - 1
						}
					} else {
						f.cursor = (f.cursor + 1) % len(f.options)
					}
					return m, nil
				}
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.fields) {
				return m.submitForm()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = len(m.fields)
				}
			} else {
				m.focusIndex++
				if m.focusIndex > len(m.fields) {
					m.focusIndex = 0
				}
			}
			m.applyFocus()
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

// submitForm validates and, when clean, fires the create call.
func (m entryFormModel) submitForm() (entryFormModel, tea.Cmd) {
	values := m.Values()
	errs := m.schema.Validate(values)
	for i := range m.fields {
		m.fields[i].err = errs[m.fields[i].spec.Name]
	}
	if len(errs) > 0 {
		return m, nil
	}

	m.apiErr = ""
	m.pending = true
	gen := m.gen
	submit := m.submit
	return m, func() tea.Msg {
		return formResultMsg{gen: gen, err: submit(context.Background(), values)}
	}
}

func (m *entryFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for i := range m.fields {
		f := &m.fields[i]
		if f.spec.Kind == form.Select || f.spec.Kind == form.Bool {
			continue
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m entryFormModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render(i18n.T(m.titleID)), "")

	for i, f := range m.fields {
		label := i18n.T(f.spec.Label)
		var line string
		switch f.spec.Kind {
		case form.Select:
			marker := "  "
			if i == m.focusIndex {
				marker = "> "
			}
			line = marker + label + ": < " + f.options[f.cursor].label + " >"
		case form.Bool:
			check := "[ ]"
			if f.checked {
				check = "[x]"
			}
			marker := "  "
			if i == m.focusIndex {
				marker = "> "
			}
			line = marker + label + ": " + check
		default:
			line = "  " + label + ": " + f.input.View()
		}
		if i == m.focusIndex {
			line = formSelectedStyle.Render(line)
		}
		viewItems = append(viewItems, line)
		if f.err != "" {
			viewItems = append(viewItems, errorStyle.Render("    "+f.err))
		}
	}

	if m.derived != nil {
		total := m.derived.compute(m.Values())
		viewItems = append(viewItems, "",
			totalBoxStyle.Render(i18n.T(m.derived.labelID)+": "+total))
	}

	buttonLabel := "[ " + i18n.T("common.submit") + " ]"
	if m.pending {
		buttonLabel = "[ " + i18n.T("common.submitting") + " ]"
	}
	button := formItemStyle.Render(buttonLabel)
	if m.focusIndex == len(m.fields) {
		button = formSelectedStyle.Render(buttonLabel)
	}
	viewItems = append(viewItems, "", button)

	if m.apiErr != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.apiErr))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("common.help_form")))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
