// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetOrFetchesOnce(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"34ABC123"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOr(context.Background(), c, KeyVehicles, fetch)
		if err != nil {
			t.Fatalf("GetOr failed: %v", err)
		}
		if len(got) != 1 || got[0] != "34ABC123" {
			t.Fatalf("unexpected value: %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	c := New(time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := GetOr(context.Background(), c, KeyMaintenance, fetch); err != nil {
		t.Fatal(err)
	}
	current = current.Add(59 * time.Second)
	if _, err := GetOr(context.Background(), c, KeyMaintenance, fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("entry expired early, %d fetches", calls)
	}

	current = current.Add(2 * time.Second)
	if _, err := GetOr(context.Background(), c, KeyMaintenance, fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("entry survived its TTL, %d fetches", calls)
	}
}

func TestInvalidateDropsOnlyNamedKeys(t *testing.T) {
	c := New(time.Minute)
	fetchA := func(ctx context.Context) (string, error) { return "a", nil }
	fetchB := func(ctx context.Context) (string, error) { return "b", nil }
	GetOr(context.Background(), c, KeyVehicles, fetchA)
	GetOr(context.Background(), c, KeyFuel, fetchB)

	c.Invalidate(KeyFuel)

	if _, ok := c.get(KeyFuel); ok {
		t.Error("invalidated key still cached")
	}
	if _, ok := c.get(KeyVehicles); !ok {
		t.Error("unrelated key was dropped")
	}
}

func TestFetchErrorsAreNotCached(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	boom := errors.New("boom")
	fetch := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	if _, err := GetOr(context.Background(), c, KeyUsers, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	got, err := GetOr(context.Background(), c, KeyUsers, fetch)
	if err != nil || got != "ok" {
		t.Fatalf("retry after error failed: %v %q", err, got)
	}
}
