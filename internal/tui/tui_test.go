// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aractakip/aractakip/buildvars"
	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/config"
	"github.com/aractakip/aractakip/internal/state"
)

func newTestMain(t *testing.T) mainModel {
	t.Helper()
	store, err := state.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	session := &api.MemorySession{}
	session.SetCredentials("tok", "user")
	client := api.New("http://localhost:0", session)
	cfg := &config.Config{APIURL: api.DefaultBaseURL, Language: "tr"}
	return newMainModel(client, store, cache.New(time.Minute), cfg)
}

func TestAuthExpiryRoutesToLogin(t *testing.T) {
	m := newTestMain(t)
	if m.view != menuView {
		t.Fatalf("authenticated start must land on the menu, got %d", m.view)
	}

	next, _ := m.Update(authExpiredMsg{})
	routed := next.(mainModel)
	if routed.view != loginView {
		t.Fatalf("expiry must route to the login view, got %d", routed.view)
	}
	if routed.loginErr == "" {
		t.Error("the expiry reason must be shown on the login screen")
	}
}

func TestAuthExpiryIgnoredOnLoginScreen(t *testing.T) {
	m := newTestMain(t)
	m.view = loginView
	m.login = newLoginModel(m.client)
	m.login.inputs[0].SetValue("half-typed@example.com")

	next, cmd := m.Update(authExpiredMsg{})
	routed := next.(mainModel)
	if routed.view != loginView {
		t.Fatal("expiry on the login screen must not navigate")
	}
	if cmd != nil {
		t.Error("expiry on the login screen must be a no-op")
	}
	if got := routed.login.inputs[0].Value(); got != "half-typed@example.com" {
		t.Errorf("login input was reset to %q", got)
	}
}

func TestUnauthenticatedStartShowsLogin(t *testing.T) {
	store, err := state.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	client := api.New("http://localhost:0", &api.MemorySession{})
	cfg := &config.Config{Language: "tr"}
	m := newMainModel(client, store, cache.New(time.Minute), cfg)
	if m.view != loginView {
		t.Fatalf("unauthenticated start must show login, got %d", m.view)
	}
}

func TestMenuHidesUserManagementFromRegularUsers(t *testing.T) {
	m := newTestMain(t)
	for _, e := range m.visibleMenu() {
		if e.view == usersView {
			t.Fatal("regular users must not see user management")
		}
	}

	admin := &api.MemorySession{}
	admin.SetCredentials("tok", "admin")
	m.client = api.New("http://localhost:0", admin)
	found := false
	for _, e := range m.visibleMenu() {
		if e.view == usersView {
			found = true
		}
	}
	if !found {
		t.Fatal("admins must see user management")
	}
}

func TestAlignFooter(t *testing.T) {
	got := alignFooter("sol", "sağ", 10)
	if got != "sol    sağ" {
		t.Errorf("alignFooter = %q", got)
	}
	// Too narrow still keeps one separating space.
	if got := alignFooter("uzun-sol", "uzun-sağ", 4); got != "uzun-sol uzun-sağ" {
		t.Errorf("narrow alignFooter = %q", got)
	}
}

func TestFooterShowsVersion(t *testing.T) {
	m := newTestMain(t)
	m.width = 60
	if view := m.View(); !strings.Contains(view, "aractakip "+buildvars.VersionOrDefault("dev")) {
		t.Error("the footer must show the build version")
	}
}
