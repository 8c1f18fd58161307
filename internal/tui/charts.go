// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chartRow is one bar of a horizontal bar chart.
type chartRow struct {
	label string
	value float64
}

// maxBarWidth bounds the bar area so charts stay readable on narrow terms.
const maxBarWidth = 40

// barChart renders rows as right-padded labels with proportional bars and
// the formatted value, the series already aggregated by the server.
func barChart(rows []chartRow, width int) string {
	if len(rows) == 0 {
		return helpStyle.Render("-")
	}

	labelWidth := 0
	max := 0.0
	for _, r := range rows {
		if n := lipgloss.Width(r.label); n > labelWidth {
			labelWidth = n
		}
		if r.value > max {
			max = r.value
		}
	}

	barArea := width - labelWidth - 14
	if barArea > maxBarWidth {
		barArea = maxBarWidth
	}
	if barArea < 4 {
		barArea = 4
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		n := 0
		if max > 0 {
			n = int(r.value / max * float64(barArea))
		}
		if n == 0 && r.value > 0 {
			n = 1
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r.label))
		b.WriteString(r.label + pad + " " + barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %.2f", r.value))
	}
	return b.String()
}
