package utils

import (
	"errors"
	"unicode"
)

var (
	ErrPasswordTooShort   = errors.New("Password must be at least 8 characters long.")
	ErrPasswordNeedsDigit = errors.New("Password must contain at least one number.")
	ErrPasswordNeedsUpper = errors.New("Password must contain at least one uppercase letter.")
	ErrPasswordMismatch   = errors.New("Passwords do not match.")
)

// ValidatePassword enforces the signup password policy. Each rule is checked
// independently so the first violation is the one reported.
func ValidatePassword(password, confirm string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !containsFunc(password, unicode.IsDigit) {
		return ErrPasswordNeedsDigit
	}
	if !containsFunc(password, unicode.IsUpper) {
		return ErrPasswordNeedsUpper
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}
