package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/edupanel/center-service/pkg/util"
)

// MinPasswordLength is enforced server side regardless of transport
// validation.
const MinPasswordLength = 8

// ValidateNewPassword checks the password policy for account creation
// and password changes.
func ValidateNewPassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.NewValidationError("password too short", map[string]any{
			"min_length": MinPasswordLength,
		})
	}
	return nil
}

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
