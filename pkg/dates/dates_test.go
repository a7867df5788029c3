package dates

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		first, last time.Time
	}{
		{"january", 2025, 1, date(2025, time.January, 1), date(2025, time.January, 31)},
		{"april has 30 days", 2025, 4, date(2025, time.April, 1), date(2025, time.April, 30)},
		{"february non-leap", 2025, 2, date(2025, time.February, 1), date(2025, time.February, 28)},
		{"february leap", 2024, 2, date(2024, time.February, 1), date(2024, time.February, 29)},
		{"century non-leap", 1900, 2, date(1900, time.February, 1), date(1900, time.February, 28)},
		{"quadricentennial leap", 2000, 2, date(2000, time.February, 1), date(2000, time.February, 29)},
		{"december", 2025, 12, date(2025, time.December, 1), date(2025, time.December, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last := MonthBounds(tc.year, tc.month)
			if !first.Equal(tc.first) {
				t.Errorf("first = %v, want %v", first, tc.first)
			}
			if !last.Equal(tc.last) {
				t.Errorf("last = %v, want %v", last, tc.last)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"simple shift", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"year boundary", date(2025, time.November, 10), 3, date(2026, time.February, 10)},
		{"multi-year", date(2024, time.June, 5), 25, date(2026, time.July, 5)},
		{"zero months", date(2025, time.May, 20), 0, date(2025, time.May, 20)},
		{"dec 31 to jan 31", date(2025, time.December, 31), 1, date(2026, time.January, 31)},
		{"may 31 clamps to jun 30", date(2025, time.May, 31), 1, date(2025, time.June, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonths(tc.in, tc.n)
			if !got.Equal(tc.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddMonthsAlwaysValid(t *testing.T) {
	// Shifting from a month-end day must never roll into the following month.
	start := date(2024, time.January, 31)
	for n := 0; n < 48; n++ {
		got := AddMonths(start, n)
		wantMonth := (int(start.Month()) - 1 + n) % 12
		if int(got.Month())-1 != wantMonth {
			t.Fatalf("AddMonths(%v, %d) landed in month %v", start, n, got.Month())
		}
	}
}

func TestYearMonthKey(t *testing.T) {
	if got := YearMonthKey(date(2025, time.March, 7)); got != "2025-03" {
		t.Errorf("YearMonthKey = %q, want %q", got, "2025-03")
	}
	if YearMonthKey(date(2025, time.September, 1)) >= YearMonthKey(date(2025, time.October, 1)) {
		t.Error("keys must sort chronologically")
	}
}

func TestCivil(t *testing.T) {
	in := time.Date(2025, time.July, 4, 13, 45, 12, 999, time.FixedZone("X", 3600))
	got := Civil(in)
	if !got.Equal(date(2025, time.July, 4)) {
		t.Errorf("Civil = %v", got)
	}
}
