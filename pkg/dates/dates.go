// Package dates holds the calendar arithmetic shared by billing and
// installment scheduling. All functions are pure and operate on civil
// dates: times are normalized to midnight UTC and carry no clock component.
package dates

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Civil truncates t to a date at midnight UTC.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first and last day of the given calendar month.
func MonthBounds(year, month int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// AddMonths shifts t forward by n calendar months, clamping the day of
// month to the last valid day of the target month. Jan 31 + 1 month is
// Feb 28 (or 29 in a leap year), never Mar 3.
func AddMonths(t time.Time, n int) time.Time {
	// 0-based month count so the year carries via floor division.
	months := t.Year()*12 + int(t.Month()) - 1 + n
	year, month := months/12, time.Month(months%12+1)

	_, lastDay := MonthBounds(year, int(month))
	day := t.Day()
	if day > lastDay.Day() {
		day = lastDay.Day()
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// YearMonthKey formats a date as "YYYY-MM". Keys sort chronologically.
func YearMonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
