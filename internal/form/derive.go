// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"math"
	"strconv"
)

// FuelTotal derives the displayed total cost from liters and unit price,
// rounded to two decimals. It is a pure function recomputed on every render;
// the result is never stored and never submitted.
func FuelTotal(liters, unitPrice float64) float64 {
	return math.Round(liters*unitPrice*100) / 100
}

// FuelTotalDisplay renders the live total for the two raw inputs, the way
// the fuel form shows it while the user types. Unparseable or missing input
// displays as zero.
func FuelTotalDisplay(litersRaw, priceRaw string) string {
	l, lerr := strconv.ParseFloat(litersRaw, 64)
	p, perr := strconv.ParseFloat(priceRaw, 64)
	if lerr != nil || perr != nil {
		return "0.00"
	}
	return strconv.FormatFloat(FuelTotal(l, p), 'f', 2, 64)
}
