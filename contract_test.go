package carteira

import (
	"encoding/json"
	"testing"
	"time"
)

func TestResolveStatus(t *testing.T) {
	// A pinned clock: status resolution is time-dependent, so the tests
	// never read the ambient wall clock.
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		contract Contract
		want     Status
	}{
		{
			name:     "explicit open status wins over past maturity",
			contract: Contract{Status: StatusOpen, MaturityDate: "2020-01-01"},
			want:     StatusOpen,
		},
		{
			name:     "explicit closed status wins over future maturity",
			contract: Contract{Status: StatusClosed, MaturityDate: "2030-01-01"},
			want:     StatusClosed,
		},
		{
			name:     "maturity one day before now derives closed",
			contract: Contract{MaturityDate: "2024-06-14"},
			want:     StatusClosed,
		},
		{
			name:     "maturity one day after now derives open",
			contract: Contract{MaturityDate: "2024-06-16"},
			want:     StatusOpen,
		},
		{
			name:     "no maturity derives open",
			contract: Contract{},
			want:     StatusOpen,
		},
		{
			name:     "unparseable maturity derives open",
			contract: Contract{MaturityDate: "n/a"},
			want:     StatusOpen,
		},
		{
			name:     "unrecognized explicit status falls through to derivation",
			contract: Contract{Status: "PENDENTE", MaturityDate: "2024-06-14"},
			want:     StatusClosed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.contract.ResolveStatus(now); got != tc.want {
				t.Errorf("ResolveStatus = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContractUnmarshal(t *testing.T) {
	payload := `{
		"id": 12,
		"clienteId": "7",
		"titulo": "Precatório TJSP",
		"valor": "2500.50",
		"rentabilidade": null,
		"dataInvestimento": "2024-01-15",
		"created_at": "2024-01-10T08:00:00Z",
		"status": "ABERTO",
		"tipo": "ATIVO",
		"produto": "PRECATORIO"
	}`

	var c Contract
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if c.ID != 12 || c.ClientID != 7 {
		t.Errorf("ids = %d/%d, want 12/7", c.ID, c.ClientID)
	}
	if c.PrincipalValue != 2500.50 {
		t.Errorf("PrincipalValue = %v, want 2500.50 (coerced from string)", c.PrincipalValue)
	}
	if c.MonthlyRate != 0 {
		t.Errorf("MonthlyRate = %v, want 0 (coerced from null)", c.MonthlyRate)
	}
	if c.CreatedAt != "2024-01-10T08:00:00Z" {
		t.Errorf("CreatedAt = %q, want the created_at fallback", c.CreatedAt)
	}
	if c.Status != StatusOpen || c.Kind != KindAsset || c.Product != ProductPrecatorio {
		t.Errorf("enums = %v/%v/%v", c.Status, c.Kind, c.Product)
	}
}

func TestProjectedProfit(t *testing.T) {
	testCases := []struct {
		name     string
		contract Contract
		want     float64
		wantOK   bool
	}{
		{
			name: "three-month span, both ends counted",
			contract: Contract{
				PrincipalValue: 1000, MonthlyRate: 10,
				InvestmentDate: "2024-01-15", MaturityDate: "2024-03-15",
			},
			want:   300, // 1000 × 0.10 × 3
			wantOK: true,
		},
		{
			name: "missing maturity",
			contract: Contract{
				PrincipalValue: 1000, MonthlyRate: 10, InvestmentDate: "2024-01-15",
			},
			wantOK: false,
		},
		{
			name: "malformed investment date",
			contract: Contract{
				PrincipalValue: 1000, MonthlyRate: 10,
				InvestmentDate: "??", MaturityDate: "2024-03-15",
			},
			wantOK: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.contract.ProjectedProfit()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ProjectedProfit = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUserUnmarshal(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"id":3,"nome":"Helena","email":"h@hr.com"}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.Name != "Helena" {
		t.Errorf("Name = %q, want the nome alias", u.Name)
	}
	if u.Role != RoleUser {
		t.Errorf("Role = %q, want default USER", u.Role)
	}
}
