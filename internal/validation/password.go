// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"inkwell/internal/models"
)

// passwordSymbols is the fixed set of symbols the password policy accepts.
const passwordSymbols = "@$!%*?&"

// ValidatePassword checks the password strength policy: minimum 5 characters,
// at least one lowercase letter, one uppercase letter, one digit, and one
// symbol from the allowed set, with no characters outside that alphabet.
func ValidatePassword(password string) error {
	if len(password) < 5 {
		return models.NewWeakPasswordError()
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r) && r <= 'z':
			hasLower = true
		case unicode.IsUpper(r) && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			// Anything outside [A-Za-z0-9@$!%*?&] fails the pattern.
			return models.NewWeakPasswordError()
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return models.NewWeakPasswordError()
	}
	return nil
}

// ValidatePasswordPair applies the strength policy to password and then
// checks the confirmation. The confirmation value is only ever compared,
// never returned or stored.
func ValidatePasswordPair(password, confirm string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return models.NewPasswordMismatchError()
	}
	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	// Only allow alphanumeric and underscores
	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}
