// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "testing"

func TestFuelTotalRounding(t *testing.T) {
	cases := []struct {
		liters, price, want float64
	}{
		{40, 42.5, 1700},
		{1.111, 1.111, 1.23},  // 1.234321 rounds down
		{33.33, 3, 99.99},
		{0.1, 0.1, 0.01},
		{0, 42.5, 0},
	}
	for _, c := range cases {
		if got := FuelTotal(c.liters, c.price); got != c.want {
			t.Errorf("FuelTotal(%v, %v) = %v, want %v", c.liters, c.price, got, c.want)
		}
	}
}

func TestFuelTotalDisplay(t *testing.T) {
	if got := FuelTotalDisplay("40", "42.5"); got != "1700.00" {
		t.Errorf("display = %q, want 1700.00", got)
	}
	// Unparseable or missing input shows as zero instead of an error.
	for _, pair := range [][2]string{{"", ""}, {"abc", "42"}, {"40", ""}} {
		if got := FuelTotalDisplay(pair[0], pair[1]); got != "0.00" {
			t.Errorf("display(%q, %q) = %q, want 0.00", pair[0], pair[1], got)
		}
	}
}

func TestFuelTotalRecomputedNotStored(t *testing.T) {
	// Two different inputs through the same schema instance must derive
	// independently; the total is a pure function of the current inputs.
	if FuelTotalDisplay("10", "2") == FuelTotalDisplay("10", "3") {
		t.Fatal("total must follow the inputs")
	}
}
