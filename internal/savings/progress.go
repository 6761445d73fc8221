package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is the part of a goal the projections depend on.
type Schedule struct {
	TargetAmount       decimal.Decimal
	SavingPerFrequency decimal.Decimal
	SavedAmount        decimal.Decimal
	StartDate          time.Time
	Frequency          Frequency
	LastCheckInDate    *time.Time
}

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusOnTrack    Status = "on_track"
	StatusBehind     Status = "behind"
	StatusCompleted  Status = "completed"
)

// Mood is the piggy's reaction to a goal's progress.
type Mood string

const (
	MoodCalm     Mood = "calm"
	MoodPanicked Mood = "panicked"
)

// Emoji returns the face the mobile client shows next to a goal.
func (m Mood) Emoji() string {
	if m == MoodCalm {
		return "😊"
	}
	return "😱"
}

type Progress struct {
	PeriodsElapsed  int
	ExpectedSavings decimal.Decimal
	OnTrack         bool
	Status          Status
	Mood            Mood
	PercentComplete decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// EvaluateProgress compares what has been saved against what should have been
// saved by asOf. Periods are counted on calendar dates; the time of day of
// either argument is ignored.
func EvaluateProgress(s Schedule, asOf time.Time) Progress {
	elapsed := PeriodsElapsed(s.StartDate, asOf, s.Frequency)
	expected := s.SavingPerFrequency.Mul(decimal.NewFromInt(int64(elapsed)))
	onTrack := s.SavedAmount.GreaterThanOrEqual(expected)

	p := Progress{
		PeriodsElapsed:  elapsed,
		ExpectedSavings: expected,
		OnTrack:         onTrack,
		Mood:            MoodPanicked,
		PercentComplete: decimal.Zero,
	}

	if onTrack {
		p.Mood = MoodCalm
	}

	if s.TargetAmount.IsPositive() {
		p.PercentComplete = s.SavedAmount.Div(s.TargetAmount).Mul(hundred).Round(2)
	}

	switch {
	case s.TargetAmount.IsPositive() && s.SavedAmount.GreaterThanOrEqual(s.TargetAmount):
		p.Status = StatusCompleted
	case civilDate(asOf).Before(civilDate(s.StartDate)):
		p.Status = StatusNotStarted
	case onTrack:
		p.Status = StatusOnTrack
	default:
		p.Status = StatusBehind
	}

	return p
}

// PeriodsElapsed counts whole periods of f between start and asOf, never
// less than zero. Unknown frequencies count as zero.
func PeriodsElapsed(start, asOf time.Time, f Frequency) int {
	from, to := civilDate(start), civilDate(asOf)
	if !to.After(from) {
		return 0
	}

	if f == Monthly {
		fy, fm, _ := from.Date()
		ty, tm, _ := to.Date()
		months := (ty-fy)*12 + int(tm-fm)
		for months > 0 && addMonths(from, months).After(to) {
			months--
		}
		return months
	}

	days := f.periodDays()
	if days == 0 {
		return 0
	}

	// Unix seconds rather than Sub: a Duration saturates after ~292 years.
	return int((to.Unix()-from.Unix())/secondsPerDay) / days
}

// NextSavingDate is one period after the last check-in, or after the start
// date when nothing has been saved yet.
func NextSavingDate(s Schedule) (time.Time, error) {
	anchor := s.StartDate
	if s.LastCheckInDate != nil {
		anchor = *s.LastCheckInDate
	}
	return s.Frequency.Add(anchor, 1)
}

const secondsPerDay = 24 * 60 * 60

// civilDate drops the clock and zone, keeping the date as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
