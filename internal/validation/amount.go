package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/templui/piggypanic/internal/savings"
)

// MaxAmount keeps stored hundredths well inside int64.
var MaxAmount = decimal.New(1, 12)

// ParseAmount parses a user-entered amount that will be stored. It must be
// positive, have at most two decimal places and stay below MaxAmount.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := savings.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: please enter a valid %s", savings.ErrInvalidInput, field)
	}

	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than zero", savings.ErrInvalidInput, field)
	}

	if !d.Shift(2).IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %s can have at most two decimal places", savings.ErrInvalidInput, field)
	}

	if d.GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s is too large", savings.ErrInvalidInput, field)
	}

	return d, nil
}
