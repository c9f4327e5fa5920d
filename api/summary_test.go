package api

import (
	"encoding/json"
	"testing"
)

func TestDecodeSummary_PerFieldTolerance(t *testing.T) {
	doc := `{
		"totalValor": 1000,
		"mediaRent": "8.5",
		"lucroFuturo": "not-a-number",
		"contratosAtivos": 3,
		"bars": [
			{"label": "jan/24", "value": 0.5},
			{"label": "fev/24", "value": "1.5"},
			{"label": "mar/24", "value": null},
			"garbage"
		]
	}`
	var jobj any
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	s := decodeSummary(jobj)
	if s == nil {
		t.Fatal("decodeSummary returned nil")
	}
	if s.TotalInvested == nil || *s.TotalInvested != 1000 {
		t.Errorf("TotalInvested = %v, want 1000", s.TotalInvested)
	}
	if s.AverageMonthlyRate == nil || *s.AverageMonthlyRate != 8.5 {
		t.Errorf("AverageMonthlyRate = %v, want 8.5 coerced from string", s.AverageMonthlyRate)
	}
	if s.FutureProfit != nil {
		t.Errorf("FutureProfit = %v, want nil for a non-numeric value", *s.FutureProfit)
	}
	if s.FutureRedemption != nil {
		t.Errorf("FutureRedemption = %v, want nil for an absent field", *s.FutureRedemption)
	}
	if s.ActiveContracts == nil || *s.ActiveContracts != 3 {
		t.Errorf("ActiveContracts = %v, want 3", s.ActiveContracts)
	}
	if len(s.Bars) != 3 {
		t.Fatalf("Bars = %v, want 3 entries (the non-object one dropped)", s.Bars)
	}
	if s.Bars[1].Value != 1.5 {
		t.Errorf("Bars[1].Value = %v, want 1.5 coerced from string", s.Bars[1].Value)
	}
	if s.Bars[2].Value != 0 {
		t.Errorf("Bars[2].Value = %v, want 0 default for null", s.Bars[2].Value)
	}
}

func TestDecodeSummary_Nil(t *testing.T) {
	if s := decodeSummary(nil); s != nil {
		t.Errorf("decodeSummary(nil) = %+v, want nil", s)
	}
}
