package savings_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/savings"
)

func TestApplyCheckIn_Deposit(t *testing.T) {
	c, err := savings.ApplyCheckIn(decimal.NewFromInt(100), decimal.NewFromInt(50), savings.Deposit)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(150).Equal(c.SavedAmount))
	assert.True(t, decimal.NewFromInt(50).Equal(c.Delta))
	assert.Contains(t, c.Message(), "thrilled")
}

func TestApplyCheckIn_Withdraw(t *testing.T) {
	c, err := savings.ApplyCheckIn(decimal.NewFromInt(100), decimal.NewFromInt(100), savings.Withdraw)
	require.NoError(t, err)

	assert.True(t, c.SavedAmount.IsZero())
	assert.True(t, decimal.NewFromInt(-100).Equal(c.Delta))
	assert.Contains(t, c.Message(), "panicked")
}

func TestApplyCheckIn_InsufficientBalance(t *testing.T) {
	saved := decimal.NewFromInt(100)

	c, err := savings.ApplyCheckIn(saved, decimal.NewFromInt(150), savings.Withdraw)
	require.ErrorIs(t, err, savings.ErrInsufficientBalance)
	assert.Equal(t, savings.CheckIn{}, c)
	assert.True(t, decimal.NewFromInt(100).Equal(saved))
}

func TestApplyCheckIn_InvalidAmount(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := savings.ApplyCheckIn(decimal.NewFromInt(100), amount, savings.Deposit)
		assert.ErrorIs(t, err, savings.ErrInvalidInput)
	}

	_, err := savings.ApplyCheckIn(decimal.NewFromInt(100), decimal.NewFromInt(1), savings.Direction("sideways"))
	assert.ErrorIs(t, err, savings.ErrInvalidInput)
}

func TestParseDirection(t *testing.T) {
	d, err := savings.ParseDirection("Withdraw")
	require.NoError(t, err)
	assert.Equal(t, savings.Withdraw, d)

	_, err = savings.ParseDirection("borrow")
	assert.ErrorIs(t, err, savings.ErrInvalidInput)
}
