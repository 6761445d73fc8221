package validation

import (
	"fmt"
	"strings"

	"github.com/templui/piggypanic/internal/savings"
)

var commonPatterns = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
	"piggy",
}

// ValidatePassword validates password strength
// Enforces NIST recommendations: minimum 12 characters, blocks common patterns
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return fmt.Errorf("%w: password must be at least 12 characters", savings.ErrInvalidInput)
	}

	// bcrypt silently truncates passwords longer than 72 bytes
	if len(password) > 72 {
		return fmt.Errorf("%w: password must not exceed 72 characters", savings.ErrInvalidInput)
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("%w: password is too common, please choose a stronger one", savings.ErrInvalidInput)
		}
	}

	return nil
}

// ValidatePasswordConfirmation checks the password and its repeat match
// before checking strength.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", savings.ErrInvalidInput)
	}
	return ValidatePassword(password)
}
