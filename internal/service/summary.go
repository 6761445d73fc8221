package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/templui/piggypanic/internal/savings"
)

// GoalSummary is the dashboard roll-up of all of a user's goals.
type GoalSummary struct {
	Goals       int                    `json:"goals"`
	ByStatus    map[savings.Status]int `json:"by_status"`
	TotalSaved  decimal.Decimal        `json:"total_saved"`
	TotalTarget decimal.Decimal        `json:"total_target"`
	Mood        savings.Mood           `json:"mood"`
	MoodEmoji   string                 `json:"mood_emoji"`
	NextSaving  *NextSaving            `json:"next_saving"`
}

// NextSaving is the earliest upcoming contribution among unfinished goals.
type NextSaving struct {
	GoalID string          `json:"goal_id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Summarize rolls goal details up for the dashboard. The piggy panics as
// soon as one goal is behind.
func Summarize(goals []*GoalDetails) GoalSummary {
	s := GoalSummary{
		Goals:       len(goals),
		ByStatus:    map[savings.Status]int{},
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
		Mood:        savings.MoodCalm,
	}

	for _, g := range goals {
		s.ByStatus[g.Status]++
		s.TotalSaved = s.TotalSaved.Add(g.SavedAmount.Decimal)
		s.TotalTarget = s.TotalTarget.Add(g.TargetAmount.Decimal)

		if g.Status == savings.StatusBehind {
			s.Mood = savings.MoodPanicked
		}

		if g.Status == savings.StatusCompleted {
			continue
		}
		if s.NextSaving == nil || g.NextSavingDate.Before(s.NextSaving.Date) {
			s.NextSaving = &NextSaving{
				GoalID: g.ID,
				Name:   g.Name,
				Amount: g.SavingPerFrequency.Decimal,
				Date:   g.NextSavingDate,
			}
		}
	}

	s.MoodEmoji = s.Mood.Emoji()
	return s
}
