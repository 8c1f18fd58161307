// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/form"
)

// testSchema is a minimal schema with one required text field and a bool.
func testSchema() form.Schema {
	return form.Schema{
		Name: "test",
		Fields: []form.Field{
			{
				Name: "ad", Label: "field.marka", Kind: form.Text,
				Rules: []form.Rule{form.Required("field.marka")},
			},
			{Name: "aktif", Label: "field.tam_depo", Kind: form.Bool, Default: "true"},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// focusSubmit moves focus onto the submit control.
func focusSubmit(m entryFormModel) entryFormModel {
	for i := 0; i <= len(m.fields); i++ {
		if m.focusIndex == len(m.fields) {
			break
		}
		m, _ = m.Update(keyMsg("tab"))
	}
	return m
}

func TestCancelIssuesNoCall(t *testing.T) {
	calls := 0
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error {
			calls++
			return nil
		}, nil)

	m, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc must emit a close message")
	}
	msg, ok := cmd().(formClosedMsg)
	if !ok {
		t.Fatalf("expected formClosedMsg, got %T", cmd())
	}
	if msg.submitted {
		t.Error("cancel must not report a submission")
	}
	if calls != 0 {
		t.Errorf("cancel issued %d calls", calls)
	}
	if m.pending {
		t.Error("cancel left the form pending")
	}
}

func TestInvalidSubmitBlocked(t *testing.T) {
	calls := 0
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error {
			calls++
			return nil
		}, nil)

	m = focusSubmit(m)
	m, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("invalid form must not fire the submit call")
	}
	if calls != 0 {
		t.Errorf("submit ran %d times on invalid input", calls)
	}
	if m.fields[0].err == "" {
		t.Error("the violated field must carry a message")
	}
	if m.pending {
		t.Error("invalid submit must not disable the form")
	}
}

func TestValidSubmitFiresOnceAndDisables(t *testing.T) {
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error {
			if values["ad"] != "Renault" {
				t.Errorf("submit saw %q", values["ad"])
			}
			return nil
		}, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Renault")})
	m = focusSubmit(m)
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("valid form must fire the submit call")
	}
	if !m.pending {
		t.Fatal("an in-flight form must be pending")
	}

	// While pending, every key is swallowed.
	before := m.Values()
	m, swallowed := m.Update(keyMsg("enter"))
	if swallowed != nil {
		t.Error("pending form must ignore keys")
	}
	after := m.Values()
	if before["ad"] != after["ad"] {
		t.Error("pending form changed its values")
	}

	// The async result closes the form.
	res := cmd()
	m, cmd = m.Update(res)
	if cmd == nil {
		t.Fatal("successful result must close the form")
	}
	closed, ok := cmd().(formClosedMsg)
	if !ok || !closed.submitted {
		t.Fatalf("expected a submitted close, got %#v", closed)
	}
}

func TestFailedSubmitKeepsValues(t *testing.T) {
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error {
			return submitErr{}
		}, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Clio")})
	m = focusSubmit(m)
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("valid form must fire the submit call")
	}

	m, next := m.Update(cmd())
	if next != nil {
		t.Error("failed result must keep the form open")
	}
	if m.pending {
		t.Error("failure must re-enable the form")
	}
	if m.apiErr == "" {
		t.Error("failure must be surfaced")
	}
	if m.Values()["ad"] != "Clio" {
		t.Errorf("entered value lost: %q", m.Values()["ad"])
	}
}

type submitErr struct{}

func (submitErr) Error() string { return "kayıt eklenemedi" }

func TestStaleResultDropped(t *testing.T) {
	data := cache.New(time.Minute)
	build := func() entryFormModel {
		return newEntryForm(nil, data, testSchema(), "title.new_vehicle",
			func(ctx context.Context, values map[string]string) error { return nil }, nil)
	}

	old := build()
	fresh := build()

	// A result carrying the old form's generation must not close the new one.
	fresh, cmd := fresh.Update(formResultMsg{gen: old.gen, err: nil})
	if cmd != nil {
		t.Fatal("stale result must be dropped")
	}
	if fresh.pending {
		t.Error("stale result touched the fresh form")
	}
}

func TestMaintenanceSubmitInvalidatesCollections(t *testing.T) {
	data := cache.New(time.Minute)
	seed := func(ctx context.Context) ([]string, error) { return []string{"seed"}, nil }
	cache.GetOr(context.Background(), data, cache.KeyMaintenance, seed)
	cache.GetOr(context.Background(), data, cache.KeyVehicles, seed)

	// The maintenance form names both collections: a new record can move the
	// vehicle's odometer, so the vehicle list goes stale with it.
	mf := newMaintenanceForm(nil, data)
	if len(mf.invalidate) != 2 || mf.invalidate[0] != cache.KeyMaintenance || mf.invalidate[1] != cache.KeyVehicles {
		t.Fatalf("maintenance form invalidates %v", mf.invalidate)
	}

	m := newEntryForm(nil, data, testSchema(), "title.new_maintenance",
		func(ctx context.Context, values map[string]string) error { return nil },
		[]string{cache.KeyMaintenance, cache.KeyVehicles})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Yağ değişimi")})
	m = focusSubmit(m)
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("valid form must fire the submit call")
	}
	if _, closeCmd := m.Update(cmd()); closeCmd == nil {
		t.Fatal("successful result must close the form")
	}

	for _, key := range []string{cache.KeyMaintenance, cache.KeyVehicles} {
		fetched := 0
		cache.GetOr(context.Background(), data, key,
			func(ctx context.Context) ([]string, error) {
				fetched++
				return nil, nil
			})
		if fetched != 1 {
			t.Errorf("%s still cached after a successful submit", key)
		}
	}
}

func TestStaleResultDoesNotInvalidateCache(t *testing.T) {
	data := cache.New(time.Minute)
	seed := func(ctx context.Context) ([]string, error) { return []string{"x"}, nil }
	cache.GetOr(context.Background(), data, cache.KeyVehicles, seed)

	m := newEntryForm(nil, data, testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error { return nil },
		[]string{cache.KeyVehicles})
	m.Update(formResultMsg{gen: m.gen - 1, err: nil})

	fetched := 0
	cache.GetOr(context.Background(), data, cache.KeyVehicles,
		func(ctx context.Context) ([]string, error) {
			fetched++
			return nil, nil
		})
	if fetched != 0 {
		t.Error("stale result invalidated the cache")
	}
}

func TestBoolToggleWithSpace(t *testing.T) {
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error { return nil }, nil)

	m, _ = m.Update(keyMsg("tab")) // focus the bool field
	if m.Values()["aktif"] != "true" {
		t.Fatalf("default = %q", m.Values()["aktif"])
	}
	m, _ = m.Update(keyMsg(" "))
	if m.Values()["aktif"] != "false" {
		t.Error("space did not toggle the bool")
	}
}

func TestSpaceOnSubmitButtonDoesNotPanic(t *testing.T) {
	m := newEntryForm(nil, cache.New(time.Minute), testSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error { return nil }, nil)
	m = focusSubmit(m)
	m.Update(keyMsg(" ")) // must be a no-op, not an index panic
}

func TestDerivedTotalFollowsInputs(t *testing.T) {
	schema := form.Schema{
		Name: "yakit",
		Fields: []form.Field{
			{Name: "litre", Label: "field.litre", Kind: form.FloatField},
			{Name: "fiyat", Label: "field.fiyat", Kind: form.FloatField},
		},
	}
	m := newEntryForm(nil, cache.New(time.Minute), schema, "title.new_fuel",
		func(ctx context.Context, values map[string]string) error { return nil }, nil).
		withDerived("common.total", func(values map[string]string) string {
			return form.FuelTotalDisplay(values["litre"], values["fiyat"])
		})

	if got := m.derived.compute(m.Values()); got != "0.00" {
		t.Errorf("empty inputs derive %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("40")})
	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42.5")})
	if got := m.derived.compute(m.Values()); got != "1700.00" {
		t.Errorf("derived total = %q, want 1700.00", got)
	}
}
