// Package renderer turns snapshots of brokerage data into markdown reports
// for the terminal: the authenticated dashboard, the public shared view and
// the admin listings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/hrinvest/carteira"
)

// chartWidth is the width, in cells, of the longest bar of a chart.
const chartWidth = 40

// barChart renders a horizontal bar chart as preformatted text. The scale
// is anchored at the largest value, never below 1 so that a series of tiny
// values does not explode. format renders the numeric value next to the bar.
func barChart(bars []carteira.Bar, format func(float64) string) string {
	max := 1.0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	var sb strings.Builder
	for _, b := range bars {
		n := int(b.Value / max * chartWidth)
		if n < 0 {
			n = 0
		}
		fmt.Fprintf(&sb, "%-*s %-*s %s\n", labelWidth, b.Label, chartWidth, strings.Repeat("█", n), format(b.Value))
	}
	return sb.String()
}

// brl formats a monetary value in the reporting currency.
func brl(v float64) string { return carteira.BRL(v).String() }

// pct formats a rentability value.
func pct(v float64) string { return carteira.Percent(v).String() }

// orDash substitutes the em-dash placeholder for empty cells.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
