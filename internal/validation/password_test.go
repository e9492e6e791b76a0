package validation

import (
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	valid := []string{
		"Qwert123@",
		"aB1@z",
		"Str0ng&pass",
		"A1b2C3?d",
	}
	for _, p := range valid {
		p := p
		t.Run("valid "+p, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, ValidatePassword(p))
		})
	}

	weak := []string{
		"",
		"ps",
		"aB1@",          // too short
		"qwert123@",     // no uppercase
		"QWERT123@",     // no lowercase
		"Qwertyui@",     // no digit
		"Qwert1234",     // no symbol
		"Qwert 123@",    // space outside alphabet
		"Qwert123#",     // symbol outside allowed set
		"Qwért123@",     // non-ASCII letter
	}
	for _, p := range weak {
		p := p
		t.Run("weak "+p, func(t *testing.T) {
			t.Parallel()
			assertCode(t, ValidatePassword(p), models.CodeWeakPassword)
		})
	}
}

func TestValidatePasswordPair(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePasswordPair("Qwert123@", "Qwert123@"))
	assertCode(t, ValidatePasswordPair("Qwert123@", "Qwert124@"), models.CodePasswordMismatch)

	// Strength is checked before the confirmation.
	assertCode(t, ValidatePasswordPair("ps", "different"), models.CodeWeakPassword)
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("reader_1"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("_leading"))
	assert.Error(t, ValidateUsername("trailing-"))
	assert.Error(t, ValidateUsername("has space"))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("author@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
}
