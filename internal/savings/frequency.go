package savings

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is the cadence at which contributions to a goal are expected.
type Frequency string

const (
	Daily       Frequency = "Daily"
	Weekly      Frequency = "Weekly"
	Fortnightly Frequency = "Fortnightly"
	Monthly     Frequency = "Monthly"
)

// Frequencies lists every supported cadence in display order.
var Frequencies = []Frequency{Daily, Weekly, Fortnightly, Monthly}

// ParseFrequency accepts any casing of a supported frequency name.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", unrecognizedFrequency(s)
}

// unrecognizedFrequency keeps the sentinel text in the message, so the
// part after the prefix still reads as a sentence.
func unrecognizedFrequency(s string) error {
	return fmt.Errorf("%w: %q is not Daily, Weekly, Fortnightly or Monthly", ErrUnrecognizedFrequency, s)
}

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Fortnightly, Monthly:
		return true
	}
	return false
}

// Noun returns the singular period name, e.g. "fortnight".
func (f Frequency) Noun() string {
	switch f {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Fortnightly:
		return "fortnight"
	case Monthly:
		return "month"
	}
	return strings.ToLower(string(f))
}

// periodDays returns the length in days of one period, or 0 for Monthly.
func (f Frequency) periodDays() int {
	switch f {
	case Daily:
		return 1
	case Weekly:
		return 7
	case Fortnightly:
		return 14
	}
	return 0
}

// Add moves t forward by n periods of f.
//
// Monthly offsets keep the day of month and clamp to the last day of the
// target month, so Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year).
func (f Frequency) Add(t time.Time, n int) (time.Time, error) {
	switch f {
	case Daily, Weekly, Fortnightly:
		return t.AddDate(0, 0, n*f.periodDays()), nil
	case Monthly:
		return addMonths(t, n), nil
	}
	return time.Time{}, unrecognizedFrequency(string(f))
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
