package validation

import (
	"fmt"
	"net/mail"

	"github.com/templui/piggypanic/internal/savings"
)

// ValidateEmail validates email format and length
// Uses Go's built-in net/mail parser which follows RFC 5322
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email address is required", savings.ErrInvalidInput)
	}

	// RFC 5321: total max 254 with @
	if len(email) > 254 {
		return fmt.Errorf("%w: email address is too long (max 254 characters)", savings.ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address format", savings.ErrInvalidInput)
	}

	return nil
}
