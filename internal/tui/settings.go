// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aractakip/aractakip/internal/config"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/logging"
	"github.com/aractakip/aractakip/internal/state"
)

// openPasswordFormMsg asks the router to show the change-password form.
type openPasswordFormMsg struct{}

// settingsModel lets the user switch the theme and language and reach the
// password form. Theme goes to the state store (it must survive a sign-out),
// language goes to the config file.
type settingsModel struct {
	store  *state.Store
	cfg    *config.Config
	status string
	err    string
}

func newSettingsModel(store *state.Store, cfg *config.Config) settingsModel {
	return settingsModel{store: store, cfg: cfg}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) theme() string {
	if t := m.store.Get(state.KeyTheme); t != "" {
		return t
	}
	return ThemeDark
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "t":
		next := ThemeDark
		if m.theme() == ThemeDark {
			next = ThemeLight
		}
		SetTheme(next)
		if err := m.store.Set(state.KeyTheme, next); err != nil {
			logging.Warnf("could not persist theme: %v", err)
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.status = ""
	case "l":
		next := "en"
		if m.cfg.Language == "en" {
			next = "tr"
		}
		m.cfg.Language = next
		i18n.SetLang(next)
		if err := config.WriteConfigFile(m.cfg, false); err != nil {
			logging.Warnf("could not persist language: %v", err)
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.status = ""
	case "p":
		return m, func() tea.Msg { return openPasswordFormMsg{} }
	}
	return m, nil
}

func (m settingsModel) View() string {
	themeLabel := i18n.T("settings.theme_dark")
	if m.theme() == ThemeLight {
		themeLabel = i18n.T("settings.theme_light")
	}

	viewItems := []string{
		titleStyle.Render(i18n.T("title.settings")),
		"",
		"  " + i18n.T("settings.theme") + ": " + selectedItemStyle.Render(themeLabel),
		"  " + i18n.T("settings.language") + ": " + selectedItemStyle.Render(m.cfg.Language),
		"  " + i18n.T("settings.password"),
	}

	if m.err != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.err))
	}
	if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("settings.help")))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
