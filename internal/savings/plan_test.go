package savings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/savings"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalPeriods(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		perPeriod string
		want      int
	}{
		{"exact division", "500", "50", 10},
		{"remainder rounds up", "501", "50", 11},
		{"fractional amounts", "100.50", "0.25", 402},
		{"per period above target", "20", "50", 1},
		{"whitespace is trimmed", " 90 ", "30", 3},
		{"long goals are not capped", "100001", "1", 100001},
		{"a million periods", "1000000", "0.01", 100000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := savings.TotalPeriods(tt.target, tt.perPeriod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPeriods_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		perPeriod string
	}{
		{"zero per period", "500", "0"},
		{"negative per period", "500", "-5"},
		{"non-numeric target", "lots", "50"},
		{"non-numeric per period", "500", "fifty"},
		{"empty target", "", "50"},
		{"zero target", "0", "50"},
		{"more periods than an int holds", "1e30", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := savings.TotalPeriods(tt.target, tt.perPeriod)
			require.ErrorIs(t, err, savings.ErrInvalidInput)
			assert.Zero(t, got)
		})
	}
}

func TestEndDate(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		f       savings.Frequency
		periods int
		want    time.Time
	}{
		{"daily", date(2024, 1, 1), savings.Daily, 31, date(2024, 2, 1)},
		{"weekly", date(2024, 1, 1), savings.Weekly, 10, date(2024, 3, 11)},
		{"fortnightly", date(2024, 1, 1), savings.Fortnightly, 2, date(2024, 1, 29)},
		{"monthly", date(2024, 1, 15), savings.Monthly, 3, date(2024, 4, 15)},
		{"monthly clamps in leap year", date(2024, 1, 31), savings.Monthly, 1, date(2024, 2, 29)},
		{"monthly clamps in common year", date(2023, 1, 31), savings.Monthly, 1, date(2023, 2, 28)},
		{"monthly from anchor not chained", date(2024, 1, 31), savings.Monthly, 2, date(2024, 3, 31)},
		{"monthly across year end", date(2024, 11, 30), savings.Monthly, 3, date(2025, 2, 28)},
		{"zero periods", date(2024, 5, 5), savings.Weekly, 0, date(2024, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := savings.EndDate(tt.start, tt.f, tt.periods)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEndDate_Errors(t *testing.T) {
	_, err := savings.EndDate(date(2024, 1, 1), savings.Frequency("Yearly"), 1)
	assert.ErrorIs(t, err, savings.ErrUnrecognizedFrequency)

	_, err = savings.EndDate(date(2024, 1, 1), savings.Weekly, -1)
	assert.ErrorIs(t, err, savings.ErrInvalidInput)
}

func TestEndDate_lastRepresentableYear(t *testing.T) {
	got, err := savings.EndDate(date(9999, 12, 1), savings.Daily, 30)
	require.NoError(t, err)
	assert.True(t, date(9999, 12, 31).Equal(got))

	_, err = savings.EndDate(date(9999, 12, 1), savings.Daily, 31)
	assert.ErrorIs(t, err, savings.ErrInvalidInput)

	_, err = savings.EndDate(date(2024, 1, 1), savings.Daily, 1<<40)
	assert.ErrorIs(t, err, savings.ErrInvalidInput)
}

func TestProject(t *testing.T) {
	plan, err := savings.Project(decimal.RequireFromString("501"), decimal.RequireFromString("50"), date(2024, 1, 1), savings.Weekly)
	require.NoError(t, err)
	assert.Equal(t, 11, plan.Periods)
	assert.True(t, date(2024, 3, 18).Equal(plan.EndDate))

	_, err = savings.Project(decimal.NewFromInt(10), decimal.NewFromInt(1), date(2024, 1, 1), savings.Frequency(""))
	assert.ErrorIs(t, err, savings.ErrUnrecognizedFrequency)
}

func TestProject_endsAfterYear9999(t *testing.T) {
	_, err := savings.Project(decimal.NewFromInt(1000), decimal.NewFromInt(10), date(9999, 6, 1), savings.Monthly)
	assert.ErrorIs(t, err, savings.ErrInvalidInput)
}
