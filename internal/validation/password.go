package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MinMasterPasswordLen минимальная длина мастер-пароля в символах
const MinMasterPasswordLen = 6

var (
	// ErrPasswordTooShort мастер-пароль короче MinMasterPasswordLen
	ErrPasswordTooShort = errors.New("master password is too short")

	// ErrPasswordMismatch пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("master password and confirmation do not match")
)

// ValidateMasterPassword проверяет новый мастер-пароль и его подтверждение.
// Длина считается в символах, а не в байтах.
func ValidateMasterPassword(password, confirmation string) error {
	if n := utf8.RuneCountInString(password); n < MinMasterPasswordLen {
		return fmt.Errorf("%w: must be at least %d characters long, got %d", ErrPasswordTooShort, MinMasterPasswordLen, n)
	}

	if password != confirmation {
		return ErrPasswordMismatch
	}

	return nil
}
