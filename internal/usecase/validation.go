package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// bcrypt ignores input past 72 bytes, so longer passwords are rejected instead of truncated.
const maxPasswordBytes = 72

var validate = validator.New()

// NormalizeEmail trims and lower-cases an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail reports whether email is a syntactically valid address.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidatePassword reports whether password can be hashed without loss.
func ValidatePassword(password string) bool {
	return password != "" && len(password) <= maxPasswordBytes
}
