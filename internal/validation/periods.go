package validation

import (
	"fmt"

	"github.com/templui/piggypanic/internal/savings"
)

// MaxPeriods bounds how many periods a stored goal may span.
const MaxPeriods = 100_000

func ValidatePeriods(periods int) error {
	if periods > MaxPeriods {
		return fmt.Errorf("%w: goal would take more than %d periods, save more each time", savings.ErrInvalidInput, MaxPeriods)
	}
	return nil
}
