package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"soiladvisor/internal/apperrors"
)

// CheckCSVExtension rejects any upload whose name does not end in .csv.
func CheckCSVExtension(filename string) error {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return fmt.Errorf("%w: %q", apperrors.ErrBadExtension, filepath.Ext(filename))
	}
	return nil
}

// SanitizeFilename reduces an uploaded filename to a safe basename: path
// separators are stripped and any character outside [A-Za-z0-9._-] becomes an
// underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "upload.csv"
	}
	return cleaned
}
