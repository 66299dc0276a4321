package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordCost is the lowest bcrypt work factor accepted for stored credentials.
const MinPasswordCost = 10

// PasswordHasher defines hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash passwords. Every hash carries its own random salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost, raised to MinPasswordCost if lower.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinPasswordCost {
		cost = MinPasswordCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks password against stored hash in constant time.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
