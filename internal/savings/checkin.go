package savings

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction says whether a check-in adds to or takes from a goal.
type Direction string

const (
	Deposit  Direction = "deposit"
	Withdraw Direction = "withdraw"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Deposit:
		return Deposit, nil
	case Withdraw:
		return Withdraw, nil
	}
	return "", fmt.Errorf("%w: direction must be %q or %q", ErrInvalidInput, Deposit, Withdraw)
}

// CheckIn is the outcome of applying a deposit or withdrawal to a balance.
//
// Delta is what must be sent to the store. SavedAmount is only the expected
// result against the snapshot the caller read and must not be written back.
type CheckIn struct {
	Direction   Direction
	Amount      decimal.Decimal
	Delta       decimal.Decimal
	SavedAmount decimal.Decimal
}

// ApplyCheckIn validates a check-in against the current saved amount.
func ApplyCheckIn(saved, amount decimal.Decimal, d Direction) (CheckIn, error) {
	if !amount.IsPositive() {
		return CheckIn{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}

	switch d {
	case Deposit:
		return CheckIn{Direction: d, Amount: amount, Delta: amount, SavedAmount: saved.Add(amount)}, nil
	case Withdraw:
		if amount.GreaterThan(saved) {
			return CheckIn{}, fmt.Errorf("%w: you can't withdraw more than what's saved", ErrInsufficientBalance)
		}
		return CheckIn{Direction: d, Amount: amount, Delta: amount.Neg(), SavedAmount: saved.Sub(amount)}, nil
	}

	return CheckIn{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, string(d))
}

// Message is the piggy's reaction shown after a successful check-in.
func (c CheckIn) Message() string {
	if c.Direction == Withdraw {
		return "Oh no! Piggy's panicked 😱."
	}
	return "Yay! Piggy is thrilled 🐷💰."
}
