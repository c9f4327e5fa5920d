package carteira

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

// someContracts builds a small contract list used across the KPI tests.
func someContracts(t *testing.T) []Contract {
	t.Helper()
	return []Contract{
		{ID: 1, ClientID: 7, Title: "Precatório TJSP", PrincipalValue: 1000, MonthlyRate: 10},
		{ID: 2, ClientID: 7, Title: "RPV Federal", PrincipalValue: 500, MonthlyRate: 5},
		{ID: 3, ClientID: 7, Title: "Precatório TRF3", PrincipalValue: 1500, MonthlyRate: 0},
	}
}

func TestComputeKPIs_EmptyInput(t *testing.T) {
	k := ComputeKPIs(nil, nil)

	if k.TotalInvested != 0 {
		t.Errorf("TotalInvested = %v, want 0", k.TotalInvested)
	}
	if k.ActiveContracts != 0 {
		t.Errorf("ActiveContracts = %d, want 0", k.ActiveContracts)
	}
	for name, v := range map[string]float64{
		"TotalInvested":      k.TotalInvested,
		"AverageMonthlyRate": k.AverageMonthlyRate,
		"FutureProfit":       k.FutureProfit,
		"FutureRedemption":   k.FutureRedemption,
		"MonthlyProfit":      k.MonthlyProfit,
		"DailyProfit":        k.DailyProfit,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want a finite number", name, v)
		}
	}
}

func TestComputeKPIs_LocalDerivation(t *testing.T) {
	contracts := someContracts(t)
	k := ComputeKPIs(contracts, nil)

	if k.TotalInvested != 3000 {
		t.Errorf("TotalInvested = %v, want 3000", k.TotalInvested)
	}
	if want := 5.0; k.AverageMonthlyRate != want {
		t.Errorf("AverageMonthlyRate = %v, want %v", k.AverageMonthlyRate, want)
	}
	if want := 150.0; k.FutureProfit != want {
		t.Errorf("FutureProfit = %v, want %v", k.FutureProfit, want)
	}
	if want := 3150.0; k.FutureRedemption != want {
		t.Errorf("FutureRedemption = %v, want %v", k.FutureRedemption, want)
	}
	if want := 150.0 / 12; k.MonthlyProfit != want {
		t.Errorf("MonthlyProfit = %v, want %v", k.MonthlyProfit, want)
	}
	if want := 150.0 / 365; k.DailyProfit != want {
		t.Errorf("DailyProfit = %v, want %v", k.DailyProfit, want)
	}
	if k.ActiveContracts != 3 {
		t.Errorf("ActiveContracts = %d, want 3", k.ActiveContracts)
	}
}

// TestComputeKPIs_OrderIndependent checks that the sum does not depend on
// contract order.
func TestComputeKPIs_OrderIndependent(t *testing.T) {
	contracts := someContracts(t)
	reversed := []Contract{contracts[2], contracts[1], contracts[0]}

	a := ComputeKPIs(contracts, nil)
	b := ComputeKPIs(reversed, nil)
	if a.TotalInvested != b.TotalInvested {
		t.Errorf("TotalInvested depends on order: %v vs %v", a.TotalInvested, b.TotalInvested)
	}
}

// TestComputeKPIs_SummaryWins checks that a server-supplied field is
// returned unchanged even when it disagrees with the local sum.
func TestComputeKPIs_SummaryWins(t *testing.T) {
	contracts := someContracts(t)
	s := &Summary{TotalInvested: f(99999)}

	k := ComputeKPIs(contracts, s)
	if k.TotalInvested != 99999 {
		t.Errorf("TotalInvested = %v, want the summary value 99999", k.TotalInvested)
	}
	// The other fields still derive locally, chained on the resolved total.
	if want := 99999 * (5.0 / 100); k.FutureProfit != want {
		t.Errorf("FutureProfit = %v, want %v", k.FutureProfit, want)
	}
}

// TestComputeKPIs_PerFieldFallback checks the fields fall back independently:
// a summary carrying only part of the KPIs never taints the rest.
func TestComputeKPIs_PerFieldFallback(t *testing.T) {
	contracts := someContracts(t)
	s := &Summary{
		FutureProfit:    f(600),
		ActiveContracts: func() *int { n := 2; return &n }(),
	}

	k := ComputeKPIs(contracts, s)
	if k.TotalInvested != 3000 {
		t.Errorf("TotalInvested = %v, want local 3000", k.TotalInvested)
	}
	if k.FutureProfit != 600 {
		t.Errorf("FutureProfit = %v, want summary 600", k.FutureProfit)
	}
	if want := 3600.0; k.FutureRedemption != want {
		t.Errorf("FutureRedemption = %v, want %v (local rule over summary profit)", k.FutureRedemption, want)
	}
	if want := 50.0; k.MonthlyProfit != want {
		t.Errorf("MonthlyProfit = %v, want %v", k.MonthlyProfit, want)
	}
	if k.ActiveContracts != 2 {
		t.Errorf("ActiveContracts = %d, want summary 2", k.ActiveContracts)
	}
}

// TestComputeKPIs_RejectsNonFinite checks that NaN and Inf summary values are
// treated as absent.
func TestComputeKPIs_RejectsNonFinite(t *testing.T) {
	contracts := someContracts(t)
	s := &Summary{
		TotalInvested: f(math.NaN()),
		FutureProfit:  f(math.Inf(1)),
	}

	k := ComputeKPIs(contracts, s)
	if k.TotalInvested != 3000 {
		t.Errorf("TotalInvested = %v, want local 3000 over NaN", k.TotalInvested)
	}
	if want := 150.0; k.FutureProfit != want {
		t.Errorf("FutureProfit = %v, want local %v over +Inf", k.FutureProfit, want)
	}
}
