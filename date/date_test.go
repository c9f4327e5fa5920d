package date

import (
	"testing"
	"time"
)

// TestTime asserts that Time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.Time() != d2.Time() {
		t.Errorf("invalid Time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: New(2024, time.January, 15)},
		{in: "2024-1-5", want: New(2024, time.January, 5)},
		{in: "2024-03-15T10:32:00Z", want: New(2024, time.March, 15)},
		{in: "", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "15/01/2024", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMonthsInclusive(t *testing.T) {
	testCases := []struct {
		name       string
		start, end Date
		want       int
	}{
		{
			name:  "two full months, same day of month",
			start: New(2024, time.January, 15),
			end:   New(2024, time.March, 15),
			want:  2,
		},
		{
			name:  "trailing partial month does not count",
			start: New(2024, time.January, 15),
			end:   New(2024, time.March, 14),
			want:  1,
		},
		{
			name:  "same month floors at one",
			start: New(2024, time.January, 10),
			end:   New(2024, time.January, 20),
			want:  1,
		},
		{
			name:  "end before start floors at one",
			start: New(2024, time.May, 1),
			end:   New(2024, time.January, 1),
			want:  1,
		},
		{
			name:  "across year boundary",
			start: New(2023, time.November, 1),
			end:   New(2024, time.February, 1),
			want:  3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsInclusive(tc.start, tc.end); got != tc.want {
				t.Errorf("MonthsInclusive(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	d := New(2024, time.November, 20)
	if got := AddMonths(d, 3); got != New(2025, time.February, 1) {
		t.Errorf("AddMonths = %v, want 2025-02-01", got)
	}
	if got := AddMonths(d, 0); got != New(2024, time.November, 1) {
		t.Errorf("AddMonths(0) = %v, want 2024-11-01", got)
	}
}

func TestMonthLabel(t *testing.T) {
	testCases := []struct {
		d    Date
		want string
	}{
		{New(2024, time.January, 15), "jan/24"},
		{New(2024, time.February, 1), "fev/24"},
		{New(2009, time.December, 31), "dez/09"},
	}
	for _, tc := range testCases {
		if got := MonthLabel(tc.d); got != tc.want {
			t.Errorf("MonthLabel(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
