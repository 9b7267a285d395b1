// Package time contains time related helpers
package time

import "time"

// MonthKey is a calendar month in the local zone of the time it was taken from
type MonthKey struct {
	Month int // 1-12
	Year  int
}

// MonthOf returns the calendar month and year of t in t's own location
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Month: int(t.Month()), Year: t.Year()}
}

// Equal reports whether both keys name the same calendar month
func (k MonthKey) Equal(o MonthKey) bool { return k.Month == o.Month && k.Year == o.Year }
