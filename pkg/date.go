package pkg

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for journal dates (calendar day, no time component).
const DayFormat = "2006-01-02"

// DayOf strips the time component, leaving the calendar day in UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day [%s]: %w", s, err)
	}
	return day, nil
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year int, month time.Month) (from, to time.Time) {
	from = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, -1)
	return from, to
}
