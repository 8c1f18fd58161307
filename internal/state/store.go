// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// package state provides the client's durable key-value storage: the access
// token, the role tag and the theme preference live here under independent
// keys, the same way the browser client kept them in localStorage. Writes go
// straight to disk so a crash never loses a sign-in.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
)

// Keys used by the rest of the application.
const (
	KeyAccessToken = "access_token"
	KeyRole        = "rol"
	KeyTheme       = "tema"
)

// Store is a concurrency-safe string key-value store persisted to a single
// YAML file. The file is created with 0600 since it holds the bearer token.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// DefaultPath returns the state file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "aractakip", "state.yaml"), nil
}

// Open loads the store from path, creating an empty one when the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("state file %s is corrupt: %w", path, err)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key and writes the file through.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flushLocked()
}

// Delete removes the given keys and writes the file through. Deleting an
// absent key is not an error.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create state directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}
