// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/i18n"
)

// loggedInMsg tells the router a sign-in completed.
type loggedInMsg struct{ role string }

// loginResultMsg carries the outcome of the sign-in call.
type loginResultMsg struct {
	gen  int
	role string
	err  error
}

type loginModel struct {
	inputs     []textinput.Model // 0: email, 1: password
	focusIndex int
	pending    bool
	err        string
	status     string
	client     *api.Client
	gen        int
}

var loginGen int

func newLoginModel(client *api.Client) loginModel {
	loginGen++
	m := loginModel{
		inputs: make([]textinput.Model, 2),
		client: client,
		gen:    loginGen,
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 40
		t.Prompt = ""
		switch i {
		case 0:
			t.Placeholder = "ornek@eposta.com"
		case 1:
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}
	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle

	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		role := msg.role
		return m, func() tea.Msg { return loggedInMsg{role: role} }

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = len(m.inputs)
				}
			} else {
				m.focusIndex++
				if m.focusIndex > len(m.inputs) {
					m.focusIndex = 0
				}
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = lipgloss.NewStyle()
			}
			return m, tea.Batch(cmds...)
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := m.inputs[0].Value()
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		m.err = i18n.T("auth.fill_all")
		return m, nil
	}

	m.err = ""
	m.pending = true
	gen := m.gen
	client := m.client
	return m, func() tea.Msg {
		res, err := client.Login(context.Background(), email, password)
		return loginResultMsg{gen: gen, role: res.Role, err: err}
	}
}

func (m loginModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, mainTitleStyle.Render("🚗 "+i18n.T("menu.title")))
	viewItems = append(viewItems, titleStyle.Render(i18n.T("title.login")), "")

	labels := []string{i18n.T("field.email"), i18n.T("field.sifre")}
	for i := range m.inputs {
		viewItems = append(viewItems, "  "+labels[i]+": "+m.inputs[i].View())
	}

	buttonLabel := "[ " + i18n.T("title.login") + " ]"
	if m.pending {
		buttonLabel = "[ " + i18n.T("login.pending") + " ]"
	}
	button := formItemStyle.Render(buttonLabel)
	if m.focusIndex == len(m.inputs) {
		button = formSelectedStyle.Render(buttonLabel)
	}
	viewItems = append(viewItems, "", button)

	if m.err != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.err))
	}
	if m.status != "" {
		viewItems = append(viewItems, "", successStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("login.hint")))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
