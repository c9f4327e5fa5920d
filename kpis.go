package carteira

import "math"

// ComputeKPIs resolves the dashboard metrics for one client's contracts.
// Each KPI independently prefers the server summary's value when present and
// finite, and falls back to the local derivation otherwise. Derived KPIs
// (future profit, redemption, monthly and daily profit) chain on the already
// resolved values, so a server-supplied total flows into a locally derived
// profit.
func ComputeKPIs(contracts []Contract, s *Summary) KPISet {
	var k KPISet
	k.TotalInvested = resolve(summaryField(s, func(s *Summary) *float64 { return s.TotalInvested }),
		func() float64 { return TotalInvested(contracts) })
	k.AverageMonthlyRate = resolve(summaryField(s, func(s *Summary) *float64 { return s.AverageMonthlyRate }),
		func() float64 { return AverageMonthlyRate(contracts) })
	k.FutureProfit = resolve(summaryField(s, func(s *Summary) *float64 { return s.FutureProfit }),
		func() float64 { return k.TotalInvested * (k.AverageMonthlyRate / 100) })
	k.FutureRedemption = resolve(summaryField(s, func(s *Summary) *float64 { return s.FutureRedemption }),
		func() float64 { return k.TotalInvested + k.FutureProfit })
	k.MonthlyProfit = resolve(summaryField(s, func(s *Summary) *float64 { return s.MonthlyProfit }),
		func() float64 { return k.FutureProfit / 12 })
	k.DailyProfit = resolve(summaryField(s, func(s *Summary) *float64 { return s.DailyProfit }),
		func() float64 { return k.FutureProfit / 365 })

	if s != nil && s.ActiveContracts != nil {
		k.ActiveContracts = *s.ActiveContracts
	} else {
		// The local fallback reports the full count, without filtering by
		// status: the caller already scoped the list to one client.
		k.ActiveContracts = len(contracts)
	}
	return k
}

// TotalInvested sums the principal values of the contracts.
func TotalInvested(contracts []Contract) float64 {
	var sum float64
	for _, c := range contracts {
		sum += c.PrincipalValue
	}
	return sum
}

// AverageMonthlyRate is the arithmetic mean of the monthly rates, 0 for an
// empty list.
func AverageMonthlyRate(contracts []Contract) float64 {
	if len(contracts) == 0 {
		return 0
	}
	var sum float64
	for _, c := range contracts {
		sum += c.MonthlyRate
	}
	return sum / float64(len(contracts))
}

// resolve applies one fallback rule: the summary value when usable, the
// local derivation otherwise.
func resolve(fromSummary *float64, derive func() float64) float64 {
	if fromSummary != nil && !math.IsNaN(*fromSummary) && !math.IsInf(*fromSummary, 0) {
		return *fromSummary
	}
	return derive()
}

// summaryField safely extracts a field pointer from a possibly nil summary.
func summaryField(s *Summary, get func(*Summary) *float64) *float64 {
	if s == nil {
		return nil
	}
	return get(s)
}
