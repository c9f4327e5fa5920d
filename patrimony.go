package carteira

import (
	"sort"

	"github.com/hrinvest/carteira/date"
)

// PatrimonyEvolution projects the accumulated patrimony month by month for
// the public dashboard's area chart.
//
// Each contract contributes, to every calendar month of its life, its
// principal plus the profit accrued up to that month (principal × monthly
// rate × elapsed months). Months are bucketed across contracts and emitted
// in ascending calendar order. Contracts whose dates cannot be resolved are
// skipped; when nothing survives, the result is empty and the caller renders
// a "no data" state instead of a chart.
func PatrimonyEvolution(contracts []Contract) []Bar {
	buckets := make(map[date.Date]float64)
	for _, c := range contracts {
		start, ok := c.StartDate()
		if !ok {
			continue
		}
		end, ok := c.EndDate()
		if !ok {
			continue
		}
		months := date.MonthsInclusive(start, end)
		monthlyProfit := c.PrincipalValue * (c.MonthlyRate / 100)
		for idx := 0; idx < months; idx++ {
			key := date.AddMonths(start, idx)
			buckets[key] += c.PrincipalValue + monthlyProfit*float64(idx+1)
		}
	}
	if len(buckets) == 0 {
		return nil
	}

	months := make([]date.Date, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	bars := make([]Bar, 0, len(months))
	for _, m := range months {
		bars = append(bars, Bar{Label: date.MonthLabel(m), Value: buckets[m]})
	}
	return bars
}
