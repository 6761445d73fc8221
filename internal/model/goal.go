package model

import (
	"time"

	"github.com/templui/piggypanic/internal/savings"
)

type Goal struct {
	ID                 string            `db:"id" json:"id"`
	UserID             string            `db:"user_id" json:"-"`
	Name               string            `db:"name" json:"name"`
	TargetAmount       Money             `db:"target_amount" json:"target_amount"`
	SavingPerFrequency Money             `db:"saving_per_frequency" json:"saving_per_frequency"`
	SavedAmount        Money             `db:"saved_amount" json:"saved_amount"`
	StartDate          time.Time         `db:"start_date" json:"start_date"`
	EndDate            time.Time         `db:"end_date" json:"end_date"`
	Frequency          savings.Frequency `db:"frequency" json:"frequency"`
	Periods            int               `db:"periods" json:"periods"`
	LastCheckInDate    *time.Time        `db:"last_check_in_date" json:"last_check_in_date"`
	CreatedAt          time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at" json:"updated_at"`
}

// Schedule returns the fields the savings projections work on.
func (g *Goal) Schedule() savings.Schedule {
	return savings.Schedule{
		TargetAmount:       g.TargetAmount.Decimal,
		SavingPerFrequency: g.SavingPerFrequency.Decimal,
		SavedAmount:        g.SavedAmount.Decimal,
		StartDate:          g.StartDate,
		Frequency:          g.Frequency,
		LastCheckInDate:    g.LastCheckInDate,
	}
}

// DueGoal is a goal joined with what a reminder needs about its owner.
type DueGoal struct {
	Goal
	Email    string `db:"email"`
	Username string `db:"username"`
}
