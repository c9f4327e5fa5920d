package cmd

import (
	"testing"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/state"
)

func TestContractFormFlags_Build(t *testing.T) {
	form := contractFormFlags{
		clientID: 42,
		title:    "Precatório TJSP",
		value:    "10.000,00",
		rate:     "1,5",
		invested: "2024-01-15",
		maturity: "2026-01-15",
	}
	got, err := form.build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got.PrincipalValue != 10000 {
		t.Errorf("PrincipalValue = %v, want 10000", got.PrincipalValue)
	}
	if got.MonthlyRate != 1.5 {
		t.Errorf("MonthlyRate = %v, want 1.5", got.MonthlyRate)
	}
}

func TestContractFormFlags_Rejects(t *testing.T) {
	tests := []struct {
		name string
		form contractFormFlags
	}{
		{"no client", contractFormFlags{title: "t"}},
		{"no title", contractFormFlags{clientID: 1}},
		{"bad date", contractFormFlags{clientID: 1, title: "t", invested: "15/01/2024"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.form.build(); err == nil {
				t.Errorf("build accepted %+v", tc.form)
			}
		})
	}
}

func TestIDList(t *testing.T) {
	var ids idList
	for _, v := range []string{"7", "8"} {
		if err := ids.Set(v); err != nil {
			t.Fatalf("Set(%q) failed: %v", v, err)
		}
	}
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 8 {
		t.Errorf("ids = %v", ids)
	}
	if err := ids.Set("abc"); err == nil {
		t.Error("Set accepted a non-numeric id")
	}
}

func TestSelectClient(t *testing.T) {
	snap := &state.Snapshot{
		Clients: []carteira.Client{{ID: 7}, {ID: 9}},
		Contracts: []carteira.Contract{
			{ID: 1, ClientID: 7},
			{ID: 2, ClientID: 9},
			{ID: 3, ClientID: 7},
		},
	}

	selected, contracts := selectClient(snap, 0)
	if selected == nil || selected.ID != 7 {
		t.Fatalf("default selection = %+v, want first client", selected)
	}
	if len(contracts) != 2 {
		t.Errorf("contracts = %v, want the two of client 7", contracts)
	}

	selected, contracts = selectClient(snap, 9)
	if selected == nil || selected.ID != 9 || len(contracts) != 1 {
		t.Errorf("selection for 9 = %+v with %d contracts", selected, len(contracts))
	}

	if selected, _ := selectClient(snap, 5); selected != nil {
		t.Errorf("unlinked id resolved to %+v", selected)
	}
}
