// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := s.Get(KeyAccessToken); got != "" {
		t.Errorf("fresh store returned %q", got)
	}
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyAccessToken, "tok-123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(KeyRole, "admin"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.Get(KeyAccessToken); got != "tok-123" {
		t.Errorf("token = %q after reopen", got)
	}
	if got := reopened.Get(KeyRole); got != "admin" {
		t.Errorf("role = %q after reopen", got)
	}
}

func TestThemeSurvivesSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Set(KeyAccessToken, "tok")
	s.Set(KeyRole, "user")
	s.Set(KeyTheme, "acik")

	if err := s.Delete(KeyAccessToken, KeyRole); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if s.Get(KeyAccessToken) != "" || s.Get(KeyRole) != "" {
		t.Error("session keys not cleared")
	}
	if got := s.Get(KeyTheme); got != "acik" {
		t.Errorf("theme = %q, want acik", got)
	}
}

func TestDeleteAbsentKeyIsNoError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(KeyAccessToken); err != nil {
		t.Errorf("deleting an absent key failed: %v", err)
	}
}

func TestStateFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyAccessToken, "secret"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("state file mode = %o, want 600", perm)
	}
}

func TestCorruptFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("corrupt state file must fail to open")
	}
}
