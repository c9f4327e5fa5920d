package carteira

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"1000", "10,00"},
		{"123456", "1.234,56"},
		{"1", "0,01"},
		{"0", "0,00"},
		{"R$ 1.234,56", "1.234,56"}, // already-masked input is idempotent
		{"abc", ""},
		{"", ""},
		{"123456789012", "1.234.567.890,12"},
	}
	for _, tc := range testCases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
	}{
		{"10,00", 10},
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"-1.000,25", -1000.25},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range testCases {
		if got := ParseCurrency(tc.in); got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestMaskRoundTrip checks the digit-stream mask round-trips to the same
// numeric value with 2 decimal places.
func TestMaskRoundTrip(t *testing.T) {
	for _, raw := range []string{"1000", "1", "123456", "999999999"} {
		masked := FormatCurrency(raw)
		got := ParseCurrency(masked)
		var want float64
		for _, r := range raw {
			want = want*10 + float64(r-'0')
		}
		want /= 100
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("round-trip %q -> %q -> %v, want %v", raw, masked, got, want)
		}
	}
}
