// Package savings holds the goal progress and projection arithmetic.
//
// Everything here is a pure function of its arguments: no clock, no I/O.
// Callers pass the current date in and persist whatever comes back out.
package savings

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// lastDate is the latest day a goal may end on; later dates have no
// four-digit year and cannot be written as YYYY-MM-DD.
var lastDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ParseAmount parses a plain decimal string such as "12" or "12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	return d, nil
}

// TotalPeriods returns ceil(target / perPeriod) for two decimal strings.
func TotalPeriods(target, perPeriod string) (int, error) {
	t, err := ParseAmount(target)
	if err != nil {
		return 0, err
	}

	p, err := ParseAmount(perPeriod)
	if err != nil {
		return 0, err
	}

	return TotalPeriodsDecimal(t, p)
}

// TotalPeriodsDecimal returns the number of periods needed to reach target
// when saving perPeriod each period.
func TotalPeriodsDecimal(target, perPeriod decimal.Decimal) (int, error) {
	if !perPeriod.IsPositive() {
		return 0, fmt.Errorf("%w: saving per period must be greater than zero", ErrInvalidInput)
	}
	if !target.IsPositive() {
		return 0, fmt.Errorf("%w: target amount must be greater than zero", ErrInvalidInput)
	}

	q, r := target.QuoRem(perPeriod, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}

	if q.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return 0, fmt.Errorf("%w: goal needs more periods than can be counted", ErrInvalidInput)
	}

	return int(q.IntPart()), nil
}

// EndDate projects the date on which the last of periods contributions is due.
// End dates after the year 9999 are rejected.
func EndDate(start time.Time, f Frequency, periods int) (time.Time, error) {
	if periods < 0 {
		return time.Time{}, fmt.Errorf("%w: periods must not be negative", ErrInvalidInput)
	}
	if !f.Valid() {
		return time.Time{}, unrecognizedFrequency(string(f))
	}
	if periods > PeriodsElapsed(start, lastDate, f) {
		return time.Time{}, fmt.Errorf("%w: goal would end after the year 9999", ErrInvalidInput)
	}
	return f.Add(start, periods)
}

// Plan is the projection shown before a goal is saved.
type Plan struct {
	Periods int
	EndDate time.Time
}

// Project computes periods and end date in one step.
func Project(target, perPeriod decimal.Decimal, start time.Time, f Frequency) (Plan, error) {
	if !f.Valid() {
		return Plan{}, unrecognizedFrequency(string(f))
	}

	periods, err := TotalPeriodsDecimal(target, perPeriod)
	if err != nil {
		return Plan{}, err
	}

	end, err := EndDate(start, f, periods)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Periods: periods, EndDate: end}, nil
}
