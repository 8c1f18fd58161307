// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import "github.com/aractakip/aractakip/internal/state"

// SessionStore holds the bearer credential and role tag for the current
// session. The pipeline is the only writer; every other component reads
// through this interface. Clearing must not touch unrelated keys (the theme
// preference survives sign-out).
type SessionStore interface {
	Token() string
	Role() string
	SetCredentials(token, role string)
	Clear()
}

// stateSession persists the session in the durable key-value store, under
// the same two keys the browser client used in localStorage.
type stateSession struct {
	st *state.Store
}

// NewStateSession wraps a state.Store as a SessionStore.
func NewStateSession(st *state.Store) SessionStore {
	return &stateSession{st: st}
}

func (s *stateSession) Token() string { return s.st.Get(state.KeyAccessToken) }
func (s *stateSession) Role() string  { return s.st.Get(state.KeyRole) }

func (s *stateSession) SetCredentials(token, role string) {
	s.st.Set(state.KeyAccessToken, token)
	if role != "" {
		s.st.Set(state.KeyRole, role)
	}
}

func (s *stateSession) Clear() {
	s.st.Delete(state.KeyAccessToken, state.KeyRole)
}

// MemorySession is an in-memory SessionStore used by tests and the headless
// commands.
type MemorySession struct {
	token string
	role  string
}

func (m *MemorySession) Token() string { return m.token }
func (m *MemorySession) Role() string  { return m.role }

func (m *MemorySession) SetCredentials(token, role string) {
	m.token = token
	if role != "" {
		m.role = role
	}
}

func (m *MemorySession) Clear() {
	m.token = ""
	m.role = ""
}
