package validation

import (
	"fmt"
	"net/mail"
)

// ValidateEmail checks a single RFC 5322 address, display name allowed.
func ValidateEmail(field, email string) error {
	if email == "" {
		return fmt.Errorf("%s is required", field)
	}

	// RFC 5321 caps a path at 254 characters
	if len(email) > 254 {
		return fmt.Errorf("%s is too long (max 254 characters)", field)
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%s is not a valid email address: %q", field, email)
	}

	return nil
}
