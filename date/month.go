package date

import (
	"fmt"
	"time"
)

// ptMonths holds the pt-BR abbreviated month names, indexed by time.Month.
var ptMonths = [...]string{
	time.January:   "jan",
	time.February:  "fev",
	time.March:     "mar",
	time.April:     "abr",
	time.May:       "mai",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "ago",
	time.September: "set",
	time.October:   "out",
	time.November:  "nov",
	time.December:  "dez",
}

// MonthsInclusive returns the number of calendar months a span covers, the way
// a contract life is counted: the raw month difference between start and end,
// minus one when the end day-of-month is earlier than the start day-of-month
// (a trailing partial month does not count), floored at 1.
func MonthsInclusive(start, end Date) int {
	months := (end.y-start.y)*12 + int(end.m) - int(start.m)
	if end.d < start.d {
		months--
	}
	if months < 1 {
		return 1
	}
	return months
}

// MonthOf returns the first day of d's month, the canonical bucket key for
// monthly series.
func MonthOf(d Date) Date { return New(d.y, d.m, 1) }

// AddMonths returns the first day of the month n months after d's month.
func AddMonths(d Date, n int) Date { return New(d.y, d.m+time.Month(n), 1) }

// MonthLabel formats d's month as an abbreviated pt-BR month plus a two-digit
// year, e.g. "jan/24".
func MonthLabel(d Date) string {
	return fmt.Sprintf("%s/%02d", ptMonths[d.m], d.y%100)
}
