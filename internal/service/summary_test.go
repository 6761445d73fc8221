package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/service"
)

func summaryGoal(id string, status savings.Status, saved, target int64, next time.Time) *service.GoalDetails {
	return &service.GoalDetails{
		Goal: &model.Goal{
			ID:                 id,
			Name:               "goal " + id,
			TargetAmount:       model.NewMoney(decimal.NewFromInt(target)),
			SavingPerFrequency: model.NewMoney(decimal.NewFromInt(10)),
			SavedAmount:        model.NewMoney(decimal.NewFromInt(saved)),
		},
		Status:         status,
		NextSavingDate: next,
	}
}

func TestSummarize(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	s := service.Summarize([]*service.GoalDetails{
		summaryGoal("a", savings.StatusOnTrack, 50, 100, day(20)),
		summaryGoal("b", savings.StatusCompleted, 200, 200, day(5)),
		summaryGoal("c", savings.StatusBehind, 10, 300, day(12)),
	})

	assert.Equal(t, 3, s.Goals)
	assert.Equal(t, 1, s.ByStatus[savings.StatusOnTrack])
	assert.Equal(t, 1, s.ByStatus[savings.StatusCompleted])
	assert.Equal(t, 1, s.ByStatus[savings.StatusBehind])
	assert.Equal(t, "260", s.TotalSaved.String())
	assert.Equal(t, "600", s.TotalTarget.String())
	assert.Equal(t, savings.MoodPanicked, s.Mood)
	assert.Equal(t, "😱", s.MoodEmoji)

	require.NotNil(t, s.NextSaving)
	assert.Equal(t, "c", s.NextSaving.GoalID, "completed goals are skipped")
	assert.Equal(t, day(12), s.NextSaving.Date)
}

func TestSummarize_empty(t *testing.T) {
	s := service.Summarize(nil)

	assert.Zero(t, s.Goals)
	assert.Equal(t, savings.MoodCalm, s.Mood)
	assert.Nil(t, s.NextSaving)
	assert.True(t, s.TotalSaved.IsZero())
}
