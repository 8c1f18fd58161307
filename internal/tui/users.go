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
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/model"
)

// openUserFormMsg asks the router to show the new-user form.
type openUserFormMsg struct{}

type usersLoadedMsg struct {
	gen   int
	users []model.User
	err   error
}

type userDeletedMsg struct {
	gen int
	err error
}

// usersModel is the admin-only account list.
type usersModel struct {
	client *api.Client
	data   *cache.Cache

	users   []model.User
	cursor  int
	loading bool
	pending bool
	status  string
	err     string

	gen int
}

var usersGen int

func newUsersModel(client *api.Client, data *cache.Cache) usersModel {
	usersGen++
	return usersModel{
		client:  client,
		data:    data,
		loading: true,
		gen:     usersGen,
	}
}

func (m usersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m usersModel) loadCmd() tea.Cmd {
	gen := m.gen
	client, data := m.client, m.data
	return func() tea.Msg {
		users, err := cache.GetOr(context.Background(), data, cache.KeyUsers,
			func(ctx context.Context) ([]model.User, error) {
				return client.Users(ctx)
			})
		return usersLoadedMsg{gen: gen, users: users, err: err}
	}
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.users = msg.users
		if m.cursor >= len(m.users) {
			m.cursor = 0
		}
		return m, nil

	case userDeletedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.status = i18n.T("users.deleted")
		m.data.Invalidate(cache.KeyUsers)
		m.loading = true
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.users)-1 {
				m.cursor++
			}
		case "a":
			return m, func() tea.Msg { return openUserFormMsg{} }
		case "x":
			if m.cursor < len(m.users) {
				m.pending = true
				m.status = ""
				gen, id := m.gen, m.users[m.cursor].ID
				client := m.client
				return m, func() tea.Msg {
					return userDeletedMsg{gen: gen, err: client.DeleteUser(context.Background(), id)}
				}
			}
		}
	}
	return m, nil
}

func (m usersModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render(i18n.T("title.users")), "")

	switch {
	case m.loading:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.loading")))
	case len(m.users) == 0:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("common.none")))
	default:
		for i, u := range m.users {
			line := fmt.Sprintf("%s <%s>", u.FullName, u.Email)
			if u.Role == model.RoleAdmin {
				line += " " + specialStyle.Render("["+u.Role+"]")
			}
			marker := "  "
			if i == m.cursor {
				marker = "> "
				line = selectedItemStyle.Render(line)
			}
			viewItems = append(viewItems, marker+line)
		}
	}

	if m.err != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.err))
	}
	if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("users.help")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
