package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{"valid", "Secret123", "Secret123", nil},
		{"too short", "Ab1", "Ab1", ErrPasswordTooShort},
		{"exactly seven", "Abcdef1", "Abcdef1", ErrPasswordTooShort},
		{"no digit", "Abcdefgh", "Abcdefgh", ErrPasswordNeedsDigit},
		{"no uppercase", "abcdefg1", "abcdefg1", ErrPasswordNeedsUpper},
		{"mismatch", "Secret123", "Secret124", ErrPasswordMismatch},
		{"length checked before digit", "Ab1", "different", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.confirm)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
