package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/templui/piggypanic/internal/savings"
)

// ValidateName checks a required display string such as a goal name or
// username. field is used in the error message.
func ValidateName(field, name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return fmt.Errorf("%w: %s is required", savings.ErrInvalidInput, field)
	}

	if utf8.RuneCountInString(trimmed) > 100 {
		return fmt.Errorf("%w: %s is too long (max 100 characters)", savings.ErrInvalidInput, field)
	}

	return nil
}
